// Package main is the entry point for the gorm-postgres-enforcer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/solomon-platform/gorm-postgres-enforcer/internal/cli"

	apperrors "github.com/solomon-platform/gorm-postgres-enforcer/internal/pkg/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Violations already printed as the report; anything else is a
		// failure of the scan itself and goes to stderr.
		if appErr, ok := apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodeViolationsFound {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		}
		os.Exit(apperrors.ExitStatus(err))
	}
}
