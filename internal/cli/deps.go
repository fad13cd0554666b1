package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// depsCommand creates the deps command.
func (c *CLI) depsCommand() *cobra.Command {
	var orderOnly bool
	var check bool

	cmd := &cobra.Command{
		Use:   "deps <package>",
		Short: "Print a package's dependency list",
		Long: `Print a package's ordinary dependencies, one per line.

With --order-only the order-only dependencies are printed instead (the part
of the dependency line after '|', followed by the dependencies_order_only
file's entries). With --check the check-phase dependencies are printed.

The output is plain names for consumption by build-graph tooling; srcforge
itself does no graph resolution.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if orderOnly && check {
				return fmt.Errorf("--order-only and --check are mutually exclusive")
			}

			reg, err := c.registry()
			if err != nil {
				return err
			}

			p, err := reg.Load(args[0])
			if err != nil {
				return err
			}

			deps := p.Dependencies()
			switch {
			case orderOnly:
				deps = p.DependenciesOrderOnly()
			case check:
				deps = p.DependenciesCheck()
			}
			for _, dep := range deps {
				fmt.Println(dep)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&orderOnly, "order-only", false, "print order-only dependencies")
	cmd.Flags().BoolVar(&check, "check", false, "print check-phase dependencies")

	return cmd
}
