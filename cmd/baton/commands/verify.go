package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/baton-protocol/baton-go/internal/vectors"
)

// ErrVectorsFailed is returned by RunVerify when any vector fails.
var ErrVectorsFailed = errors.New("conformance vectors failed")

// RunVerify runs a vector suite and prints one line per vector.
func RunVerify(path string, verbose bool, w io.Writer) (vectors.Summary, error) {
	suite, err := vectors.LoadSuite(path)
	if err != nil {
		return vectors.Summary{}, err
	}

	results, sum := suite.Run()

	fmt.Fprintf(w, "Suite: %s\n", suite.Name)
	for _, r := range results {
		switch {
		case !r.Passed:
			fmt.Fprintf(w, "  FAIL %s: %s\n", r.ID, r.Detail)
		case verbose:
			fmt.Fprintf(w, "  PASS %s\n", r.ID)
		}
	}
	fmt.Fprintf(w, "%d/%d passed", sum.Passed, sum.Total)
	if sum.Failed > 0 {
		fmt.Fprintf(w, ", %d failed", sum.Failed)
	}
	fmt.Fprintln(w)

	if sum.Failed > 0 {
		return sum, fmt.Errorf("%w: %d of %d", ErrVectorsFailed, sum.Failed, sum.Total)
	}
	return sum, nil
}
