package cnf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Dimacs writes the formula on w in the DIMACS CNF format, so that it
// can be fed to any external SAT solver.
func (f *Formula) Dimacs(w io.Writer) error {
	prefix := fmt.Sprintf("p cnf %d %d\n", f.nbVars, len(f.clauses))
	if _, err := io.WriteString(w, prefix); err != nil {
		return errors.Wrap(err, "could not write DIMACS output")
	}
	for _, clause := range f.clauses {
		strClause := make([]string, len(clause)+1)
		for i, lit := range clause {
			strClause[i] = strconv.Itoa(lit)
		}
		strClause[len(clause)] = "0\n"
		if _, err := io.WriteString(w, strings.Join(strClause, " ")); err != nil {
			return errors.Wrap(err, "could not write DIMACS output")
		}
	}
	return nil
}
