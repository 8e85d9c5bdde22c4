package main

import (
	"github.com/spf13/cobra"

	"github.com/oba-ldap/aci/internal/output"
)

func newAttrsCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "List attribute types usable as ACI targets",
		Long: `List the attribute types of the schema catalog: the built-in types plus
those of schema.file when configured. Operational and obsolete types are
only listed with --all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog()
			if err != nil {
				return err
			}

			types := catalog.UserAttributes()
			if all {
				types = catalog.All()
			}

			if a.printer.Format() == output.FormatTable {
				return a.printer.Print(newAttributeList(types))
			}
			return a.printer.Print([]attributeView(newAttributeList(types)))
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include operational attribute types")
	return cmd
}
