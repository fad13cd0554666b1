package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srcforge/srcforge/pkg/pkgs"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var typeFilter string
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all packages under the package root",
		Long: `List every package directory under the package root.

Directories without a type file are not packages and are skipped (shown
with --verbose). A malformed package aborts the listing: that is a
build-configuration error, not an absence.

Examples:
  srcforge list
  srcforge list --type standard
  srcforge list --names | xargs -n1 srcforge info`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}

			all, err := reg.All()
			if err != nil {
				return err
			}

			var filter pkgs.Type
			if typeFilter != "" {
				if filter, err = pkgs.ParseType(typeFilter); err != nil {
					return err
				}
			}

			count := 0
			for _, p := range all {
				if filter != "" && p.Type() != filter {
					continue
				}
				count++
				if namesOnly {
					fmt.Println(p.Name())
					continue
				}
				version := p.FullVersion()
				if version == "" {
					version = "-"
				}
				fmt.Printf("%-28s %-12s %s\n", p.Name(), p.Type(), version)
			}
			if !namesOnly {
				printDetail("%d packages", count)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "only list packages of this type (base|standard|optional|experimental)")
	cmd.Flags().BoolVar(&namesOnly, "names", false, "print bare package names, one per line")

	return cmd
}
