package main

import (
	"context"
	"fmt"
	"os"

	"github.com/plof27/atomichron/internal/app"
	"github.com/plof27/atomichron/internal/cli"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	// If the user asked for help or the version, avoid initializing the full
	// app (which touches the filesystem)
	skipInit := false
	for _, a := range os.Args[1:] {
		if a == "-h" || a == "--help" || a == "help" || a == "-v" || a == "--version" {
			skipInit = true
			break
		}
	}

	ctx := context.Background()

	if !skipInit {
		a, err := app.New(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
			os.Exit(1)
		}
		cli.SetApp(a)
	}

	if err := cli.Execute(ctx, buildVersion()); err != nil {
		os.Exit(1)
	}
}
