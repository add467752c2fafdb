// Command gammafn evaluates Gamma-family special functions from the command
// line, runs batch request files and prints Lanczos tables and accuracy
// reports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	cmd := makeRootCommand(afero.NewOsFs())
	if err := cmd.Execute(); err != nil {
		msg, code := describeError(err)
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(code)
	}
}
