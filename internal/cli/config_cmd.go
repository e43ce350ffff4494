package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyprgrid/hyprgrid/internal/config"
)

// configCommand creates the config command and its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the HyprGrid configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, c.resolveConfigPath())
			return nil
		},
	}
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.resolveConfigPath()
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("wrote default config", "path", path)

			p := printer{w: c.out}
			p.success("Created default configuration")
			p.file(path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return cmd
}

// resolveConfigPath returns --config when set, otherwise the XDG location.
func (c *CLI) resolveConfigPath() string {
	if c.opts.configPath != "" {
		return c.opts.configPath
	}
	return config.Path()
}
