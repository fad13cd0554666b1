package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tarballCommand creates the tarball command.
func (c *CLI) tarballCommand() *cobra.Command {
	var showURL bool
	var canonical bool

	cmd := &cobra.Command{
		Use:   "tarball <package>",
		Short: "Resolve a package's tarball filename or upstream URL",
		Long: `Resolve the tarball filename (or, with --url, the upstream URL)
by expanding the VERSION placeholder variables in the recorded pattern
against the package's declared version.

With --canonical the pattern of the canonical tarball owner is resolved
instead; for aliased (symlinked) packages that is the alias target.

Resolution fails if the pattern references version data the package does not
declare. A package without a recorded pattern prints nothing and exits 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}

			p, err := reg.Load(args[0])
			if err != nil {
				return err
			}
			if canonical {
				if p, err = reg.CanonicalTarballOwner(p); err != nil {
					return err
				}
			}

			resolve := p.TarballFilename
			if showURL {
				resolve = p.UpstreamURL
			}
			resolved, err := resolve()
			if err != nil {
				return err
			}
			if resolved == "" {
				c.Logger.Debugf("%s has no tarball pattern recorded", p.Name())
				return nil
			}
			fmt.Println(resolved)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showURL, "url", "u", false, "resolve the upstream URL instead of the filename")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "resolve against the canonical tarball owner")

	return cmd
}
