package main

import (
	"errors"
	"fmt"

	"github.com/go-ldap/ldap/v3"
	"github.com/spf13/cobra"

	"github.com/oba-ldap/aci/internal/directory"
)

// changeRequest builds the modify request shared by ldif and apply.
func changeRequest(dn, replace, text string, remove bool) (*ldap.ModifyRequest, error) {
	switch {
	case remove && replace != "":
		return nil, errors.New("--delete and --replace are mutually exclusive")
	case remove:
		return directory.DeleteRequest(dn, text)
	case replace != "":
		return directory.ReplaceRequest(dn, replace, text)
	default:
		return directory.AddRequest(dn, text)
	}
}

func newLDIFCmd(a *app) *cobra.Command {
	var (
		dn      string
		replace string
		remove  bool
	)

	cmd := &cobra.Command{
		Use:   "ldif --dn <dn> <aci>",
		Short: "Print an LDIF change record adding an ACI",
		Long: `Print the LDIF change record that adds the ACI to an entry, suitable for
ldapmodify. --replace swaps an existing value, --delete removes the value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := aciArg(cmd, args)
			if err != nil {
				return err
			}
			req, err := changeRequest(dn, replace, text, remove)
			if err != nil {
				return err
			}
			return directory.WriteLDIF(a.printer.Writer(), req)
		},
	}

	cmd.Flags().StringVar(&dn, "dn", "", "entry holding the ACI")
	cmd.Flags().StringVar(&replace, "replace", "", "existing ACI value to replace")
	cmd.Flags().BoolVar(&remove, "delete", false, "remove the ACI instead of adding it")
	_ = cmd.MarkFlagRequired("dn")
	return cmd
}

func newFetchCmd(a *app) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "List the ACIs stored below a directory entry",
		Long: `Search the subtree rooted at --base (or directory.base_dn) for aci values
and list them with their entry and permission.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if base == "" {
				base = a.cfg.Directory.BaseDN
			}
			if base == "" {
				return errors.New("no base DN: use --base or set directory.base_dn")
			}

			conn, err := directory.Dial(cmd.Context(), a.directoryConfig())
			if err != nil {
				return err
			}
			defer conn.Close()

			entries, err := directory.NewAccessor(conn, nil, a.logger).RetrieveACIs(cmd.Context(), base)
			if err != nil {
				return err
			}
			return a.printer.Print(entryList(entries))
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "search base (default: directory.base_dn)")
	return cmd
}

func newApplyCmd(a *app) *cobra.Command {
	var (
		dn      string
		replace string
		remove  bool
	)

	cmd := &cobra.Command{
		Use:   "apply --dn <dn> <aci>",
		Short: "Add, replace or delete an ACI on a directory entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := aciArg(cmd, args)
			if err != nil {
				return err
			}
			req, err := changeRequest(dn, replace, text, remove)
			if err != nil {
				return err
			}

			conn, err := directory.Dial(cmd.Context(), a.directoryConfig())
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := directory.NewAccessor(nil, conn, a.logger).Apply(cmd.Context(), req); err != nil {
				return err
			}
			a.printer.Success(fmt.Sprintf("ACI updated on %s", dn))
			return nil
		},
	}

	cmd.Flags().StringVar(&dn, "dn", "", "entry holding the ACI")
	cmd.Flags().StringVar(&replace, "replace", "", "existing ACI value to replace")
	cmd.Flags().BoolVar(&remove, "delete", false, "remove the ACI instead of adding it")
	_ = cmd.MarkFlagRequired("dn")
	return cmd
}

func (a *app) directoryConfig() directory.Config {
	d := a.cfg.Directory
	return directory.Config{
		URL:                d.URL,
		BindDN:             d.BindDN,
		BindPassword:       d.BindPassword,
		Timeout:            d.Timeout,
		InsecureSkipVerify: d.InsecureSkipVerify,
	}
}
