package cnf

import "fmt"

// A Clause is a disjunction of signed DIMACS literals.
type Clause = []int

// A Formula accumulates the clauses of a problem in conjunctive normal
// form. Clauses are appended during encoding and read exactly once by a
// SAT oracle; a Formula is never modified after that.
type Formula struct {
	clauses []Clause
	nbVars  int
}

// NewFormula returns an empty formula over the variables 1..nbVars.
// Adding a clause mentioning a variable outside that range extends it.
func NewFormula(nbVars int) *Formula {
	if nbVars < 0 {
		panic(fmt.Sprintf("cnf: negative variable count %d", nbVars))
	}
	return &Formula{nbVars: nbVars}
}

// Add appends the clause made of the given literals.
func (f *Formula) Add(lits ...int) {
	for _, lit := range lits {
		v := lit
		if v < 0 {
			v = -v
		}
		if v == 0 {
			panic("cnf: literal 0 is not a valid DIMACS literal")
		}
		if v > f.nbVars {
			f.nbVars = v
		}
	}
	f.clauses = append(f.clauses, lits)
}

// AddUnit appends a clause containing the single given literal.
func (f *Formula) AddUnit(lit int) {
	f.Add(lit)
}

// AtLeastOne appends a clause stating that at least one of the given
// literals is true.
func (f *Formula) AtLeastOne(lits []int) {
	clause := make(Clause, len(lits))
	copy(clause, lits)
	f.Add(clause...)
}

// AtMostOne appends the pairwise clauses stating that no two of the
// given literals are both true.
func (f *Formula) AtMostOne(lits []int) {
	for i := 0; i < len(lits)-1; i++ {
		for j := i + 1; j < len(lits); j++ {
			f.Add(-lits[i], -lits[j])
		}
	}
}

// ExactlyOne appends the clauses of the one-hot pattern: a totality
// clause over the given literals plus their pairwise exclusions.
func (f *Formula) ExactlyOne(lits []int) {
	f.AtLeastOne(lits)
	f.AtMostOne(lits)
}

// NbVars returns the number of variables of the formula.
func (f *Formula) NbVars() int {
	return f.nbVars
}

// NbClauses returns the number of clauses accumulated so far.
func (f *Formula) NbClauses() int {
	return len(f.clauses)
}

// Clauses returns the accumulated clause list. The caller must not
// modify it.
func (f *Formula) Clauses() [][]int {
	return f.clauses
}
