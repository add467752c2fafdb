package main

import (
	"fmt"

	"github.com/katalvlaran/lvgamma/numerr"
)

// Exit codes by error category.
const (
	exitOther         = 1
	exitDomain        = 2
	exitUndefined     = 3
	exitNoConvergence = 4
)

// describeError renders err with its category and picks the exit code.
func describeError(err error) (string, int) {
	cat := numerr.Classify(err)
	code := exitOther
	switch cat {
	case numerr.CategoryDomain:
		code = exitDomain
	case numerr.CategoryUndefined:
		code = exitUndefined
	case numerr.CategoryNoConvergence:
		code = exitNoConvergence
	}

	return fmt.Sprintf("gammafn: %s: %v", cat, err), code
}
