package commands

import (
	"fmt"
	"io"

	"github.com/connectedhome/validation-go/pkg/validation/schema"
)

// RunSchema prints the envelope JSON Schema used by validate --schema.
func RunSchema(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(stderr, "Error: schema takes no arguments\n")
		return exitCommandError
	}
	fmt.Fprint(stdout, schema.Document())
	return exitSuccess
}
