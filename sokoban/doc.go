/*
Package sokoban encodes bounded-horizon box-pushing problems as CNF
formulas, delegates satisfiability to a SAT oracle and decodes the
model back into an ordered plan of moves.

An instance is a rectangular grid with one player, at least one box,
goal cells and walls, plus a horizon T. The encoding considers the
snapshots 0..T; at each step the player either moves in one of the four
directions, pushes the box ahead of it in one of the four directions,
or stays put. A plan is valid when, at step T, every box rests on a
goal cell.

Propositional variables are split into four families laid out in
contiguous, disjoint ranges: static goal facts, player positions per
step, the nine action codes per step and box positions per step. The
closed-form bijections keep variable IDs deterministic and need no
symbol table.
*/
package sokoban
