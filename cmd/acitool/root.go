package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/oba-ldap/aci/internal/config"
	"github.com/oba-ldap/aci/internal/logging"
	"github.com/oba-ldap/aci/internal/output"
	"github.com/oba-ldap/aci/internal/schema"
)

// app holds the state shared by every command of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgFile   string
	format    string
	logLevel  string
	logFormat string

	cfg     *config.Config
	logger  logging.Logger
	printer *output.Printer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		cfg:    config.DefaultConfig(),
		logger: logging.NewNop(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "acitool",
		Short: "Inspect and author directory server access control instructions",
		Long: `acitool scans, summarizes and assembles ACI attribute values as used by
389-style directory servers, and moves them in and out of a directory.

Use "acitool [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/acitool/config.yaml)")
	flags.StringVarP(&a.format, "output", "o", "", "output format (table, json, yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	root.AddCommand(
		newScanCmd(a),
		newNameCmd(a),
		newAllowCmd(a),
		newDescribeCmd(a),
		newDecodeCmd(a),
		newAssembleCmd(a),
		newAttrsCmd(a),
		newLDIFCmd(a),
		newFetchCmd(a),
		newApplyCmd(a),
		newVersionCmd(a),
	)
	root.CompletionOptions.DisableDefaultCmd = true

	return root
}

// setup loads the configuration and applies the global flags on top of it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.format
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	a.printer = output.NewPrinter(a.stdout, format, colorEnabled(a.stdout))

	a.logger.Debug("configuration loaded", "file", a.cfgFile, "output", format.String())
	return nil
}

// catalog returns the built-in schema, extended by schema.file when set.
func (a *app) catalog() (*schema.Catalog, error) {
	cat := schema.Default()
	if a.cfg.Schema.File == "" {
		return cat, nil
	}

	local, err := schema.LoadFile(a.cfg.Schema.File)
	if err != nil {
		return nil, err
	}
	cat.Merge(local)
	a.logger.Debug("schema loaded", "file", a.cfg.Schema.File, "types", local.Len())
	return cat, nil
}

func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// fail prints msg to stderr and returns errReported.
func (a *app) fail(format string, args ...any) error {
	fmt.Fprintf(a.stderr, format+"\n", args...)
	return errReported
}
