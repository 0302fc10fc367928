// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for envalidator using the
// Cobra library. envalidator is a single flag-driven command: the root
// command carries the whole surface, there are no subcommands.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/envalidator/buildvars"
)

var version = "dev"   // set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// Execute runs the CLI entrypoint. The root main package calls this and
// handles process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures the root cobra command. Tests create
// fresh instances through this function for isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envalidator",
		Short: "Validate .env example files against real .env files.",
		Long: `Envalidator compares the keys declared in an example file
(.env.example) with those of a real environment file (.env), reports
keys missing from the example and keys with empty values, and can
initialize the env file or append the missing keys on request.`,
		SilenceUsage: true,
		RunE:         run,
	}

	v, commit, date := resolveBuildVersion(nil)
	cmd.Version = formatVersion(v, commit, date)

	cmd.Flags().StringP("env-file", "e", ".env", "Path to the .env file to validate against")
	cmd.Flags().StringP("example-file", "x", ".env.example", "Path to the .env example file to validate")
	cmd.Flags().BoolP("init", "i", false, "Initialize the env file from the example file's keys")
	cmd.Flags().BoolP("fix", "f", false, "Append the env file's missing keys to the example file")
	cmd.Flags().BoolP("approve", "y", false, "Skip interactive confirmation, assume yes")
	cmd.Flags().String("config", "", "Path to an explicit config file")
	cmd.Flags().String("lang", "en", `Message language ("en", "de")`)
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	cmd.Flags().Bool("plain", false, "Disable styled report output")

	return cmd
}

// getConfigPathFromCli returns the config file path set via --config, or
// nil when the flag is unset. A set path must point at an existing file.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	flag := cmd.Flags().Lookup("config")
	if flag == nil || !flag.Changed {
		return nil, nil
	}
	path := flag.Value.String()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &path, nil
}

// resolveBuildVersion resolves version metadata from the linker variables,
// falling back to runtime build info for `go install` style builds.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}
	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if resolvedCommit == "dev" && s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if resolvedDate == "" && s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}

func formatVersion(v, commit, date string) string {
	if date == "" {
		return fmt.Sprintf("%s (commit %s)", v, commit)
	}
	return fmt.Sprintf("%s (commit %s, built %s)", v, commit, date)
}
