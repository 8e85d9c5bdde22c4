package main

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oba-ldap/aci/internal/aci"
	"github.com/oba-ldap/aci/internal/output"
)

// aciArg returns the ACI text of the command. "-" reads it from stdin.
func aciArg(cmd *cobra.Command, args []string) (string, error) {
	if args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <aci>",
		Short: "Tokenize an ACI into name/operator/value records",
		Long: `Tokenize an ACI into the records the directory server would see.

When the text is malformed the records scanned so far are still printed and
the failing column is marked on stderr.

Examples:
  acitool scan '(targetattr="*")(version 3.0; acl "test1"; allow(read) userdn="ldap:///anyone";)'
  acitool scan -o json - < aci.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := aciArg(cmd, args)
			if err != nil {
				return err
			}

			records, scanErr := aci.Scan(text)
			if err := a.printer.Print(recordList(records)); err != nil {
				return err
			}
			if scanErr != nil {
				a.logger.Debug("scan stopped", "error", scanErr, "records", len(records))
				return a.fail("%s", aci.Diagnose(text, scanErr))
			}
			return nil
		},
	}
}

func newNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name <aci>",
		Short: "Print the acl name of an ACI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := aciArg(cmd, args)
			if err != nil {
				return err
			}

			name, err := aci.ActualName(text)
			if err != nil {
				var scanErr *aci.ScanError
				if errors.As(err, &scanErr) {
					return a.fail("%s", aci.Diagnose(text, err))
				}
				return err
			}
			return a.printer.Text("name", name)
		},
	}
}

func newAllowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "allow <aci>",
		Short: "Report whether an ACI grants rights",
		Long: `Print true when the ACI contains an allow clause and false otherwise.
Malformed text reports false.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := aciArg(cmd, args)
			if err != nil {
				return err
			}

			allowed := aci.IsPermissionAllow(text)
			if a.printer.Format() == output.FormatTable {
				a.printer.Println(strconv.FormatBool(allowed))
				return nil
			}
			return a.printer.Print(map[string]bool{"allow": allowed})
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <aci>",
		Short: "Summarize an ACI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := aciArg(cmd, args)
			if err != nil {
				return err
			}

			sum, scanErr := aci.Describe(text)
			if a.printer.Format() == output.FormatTable {
				err = output.KeyValueTable(a.printer.Writer(), summaryPairs(sum))
			} else {
				err = a.printer.Print(sum)
			}
			if err != nil {
				return err
			}
			if scanErr != nil {
				return a.fail("%s", aci.Diagnose(text, scanErr))
			}
			return nil
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <aci>",
		Short: "Convert an ACI into an editable draft",
		Long: `Convert an ACI into a draft file that "acitool assemble" turns back
into ACI text. The draft is printed as YAML unless -o json is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := aciArg(cmd, args)
			if err != nil {
				return err
			}

			draft, scanErr := aci.DecodeString(text)
			if a.printer.Format() == output.FormatJSON {
				err = output.Encode(a.printer.Writer(), output.FormatJSON, draft)
			} else {
				var data []byte
				data, err = aci.MarshalDraftYAML(draft)
				if err == nil {
					_, err = a.printer.Writer().Write(data)
				}
			}
			if err != nil {
				return err
			}
			if scanErr != nil {
				return a.fail("%s", aci.Diagnose(text, scanErr))
			}
			return nil
		},
	}
}
