package cnf

import "fmt"

// An Assignment is a truth assignment indexed by variable minus one,
// as returned by SAT oracles.
type Assignment []bool

// Lit returns the truth value of the given signed literal.
func (a Assignment) Lit(lit int) bool {
	v := lit
	if v < 0 {
		v = -v
	}
	if v == 0 || v > len(a) {
		panic(fmt.Sprintf("cnf: literal %d outside assignment of %d variables", lit, len(a)))
	}
	if lit < 0 {
		return !a[v-1]
	}
	return a[v-1]
}

// Satisfies reports whether every given clause contains at least one
// literal made true by the assignment.
func (a Assignment) Satisfies(clauses [][]int) bool {
	for _, clause := range clauses {
		sat := false
		for _, lit := range clause {
			if a.Lit(lit) {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}
