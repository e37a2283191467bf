package main

import (
	"errors"
	"fmt"
	"os"

	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode separates drift (1) from everything else (2) so CI can tell them apart.
func exitCode(err error) int {
	var drift *fberrors.DriftError
	if errors.As(err, &drift) {
		return 1
	}
	return 2
}
