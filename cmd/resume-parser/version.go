// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the resume-parser build version",
	Long: `Version prints the release version set at link time, followed by the Go
toolchain and the VCS revision recorded in the binary when available.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), versionString(version, info))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionString formats the release version with build details from info,
// which may be nil. A modified working tree marks the revision "-dirty".
func versionString(release string, info *debug.BuildInfo) string {
	parts := []string{"resume-parser " + release}
	if info == nil {
		return parts[0]
	}
	if info.GoVersion != "" {
		parts = append(parts, info.GoVersion)
	}

	var rev, when string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			when = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev != "" {
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if dirty {
			rev += "-dirty"
		}
		parts = append(parts, "rev "+rev)
	}
	if when != "" {
		parts = append(parts, when)
	}
	return strings.Join(parts, " ")
}
