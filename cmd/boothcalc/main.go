package main

import (
	"context"
	"os"

	"github.com/agbru/boothcalc/internal/app"
	"github.com/agbru/boothcalc/internal/cli"
	apperrors "github.com/agbru/boothcalc/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		if apperrors.IsConfigError(err) {
			os.Exit(apperrors.HandleError(err, os.Stderr, cli.CLIColorProvider{}))
		}
		// The flag package has already printed the error and usage.
		os.Exit(apperrors.ExitErrorConfig)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
