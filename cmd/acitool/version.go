package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oba-ldap/aci/internal/output"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "0.1.0"
	commit    = "unknown"
	buildDate = "unknown"
)

// versionInfo is the printable build information.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

func newVersionCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				a.printer.Println(version)
				return nil
			}

			info := versionInfo{
				Version:   version,
				Commit:    commit,
				BuildDate: buildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			if a.printer.Format() != output.FormatTable {
				return a.printer.Print(info)
			}

			a.printer.Println(fmt.Sprintf("acitool version %s", info.Version))
			a.printer.Println(fmt.Sprintf("  Commit:     %s", info.Commit))
			a.printer.Println(fmt.Sprintf("  Built:      %s", info.BuildDate))
			a.printer.Println(fmt.Sprintf("  Go version: %s", info.GoVersion))
			a.printer.Println(fmt.Sprintf("  OS/Arch:    %s", info.Platform))
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "show only the version number")
	return cmd
}
