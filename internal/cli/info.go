package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// infoCommand creates the info command.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <package>",
		Short: "Show a package's metadata",
		Long: `Show all recorded metadata for one package: type, version and
patchlevel, checksums, tarball and upstream URL patterns, dependency lists,
and the canonical owner of the tarball data (which differs from the package
itself only for aliased, symlinked packages).`,
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

			printTitle("%s", p.Name())
			printKeyValue("type", string(p.Type()))
			printKeyValue("version", p.Version())
			if p.HasVersion() {
				printKeyValue("full version", p.FullVersion())
			}
			printKeyValue("distribution", p.DistributionName())
			printKeyValue("sha1", p.SHA1())
			printKeyValue("md5", p.MD5())
			printKeyValue("cksum", p.CKSum())
			printKeyValue("tarball", p.TarballPattern())
			printKeyValue("upstream url", p.UpstreamURLPattern())
			if p.TarballOwnerName() != p.Name() {
				printKeyValue("tarball owner", p.TarballOwnerName())
			}
			printKeyValue("dependencies", strings.Join(p.Dependencies(), " "))
			printKeyValue("order-only", strings.Join(p.DependenciesOrderOnly(), " "))
			printKeyValue("check", strings.Join(p.DependenciesCheck(), " "))
			printDetail("directory: %s", p.Path())
			return nil
		},
	}
}
