/*
Package cnf provides the clause-level plumbing shared by the puzzle
encoders: a write-once accumulator of CNF clauses, helpers emitting the
usual cardinality patterns (at-least-one, at-most-one, exactly-one),
a DIMACS writer, and an Assignment type for evaluating a model against
a set of clauses.

Clauses follow the textbook DIMACS convention: a clause is a slice of
nonzero signed integers, where the integer k denotes the propositional
variable k and -k its negation. A slice of clauses is an implicit
conjunction.
*/
package cnf
