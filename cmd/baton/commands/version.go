package commands

import (
	"fmt"
	"io"

	"github.com/baton-protocol/baton-go/pkg/version"
)

// RunVersion prints the protocol version and its code table.
func RunVersion(w io.Writer) error {
	table, err := version.LoadCurrentCodeTable()
	if err != nil {
		return err
	}
	if res := table.Validate(); !res.Valid {
		return fmt.Errorf("code table %s does not match the codec: %v", table.Version, res.Errors)
	}

	fmt.Fprintf(w, "Baton protocol %s\n", version.Current)
	fmt.Fprintln(w, "\nMessage kinds:")
	for _, e := range table.Kinds {
		fmt.Fprintf(w, "  %03b  %s\n", e.Code, e.Name)
	}
	fmt.Fprintln(w, "\nConductors:")
	for _, e := range table.Conductors {
		fmt.Fprintf(w, "  %02b   %s\n", e.Code, e.Name)
	}
	fmt.Fprintln(w, "\nTarget groups:")
	for _, e := range table.Targets {
		fmt.Fprintf(w, "  %03b  %s\n", e.Code, e.Name)
	}
	return nil
}
