package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kk-code-lab/fv/internal/config"
)

func newConfigCommand(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration fv would run with, after merging defaults,
the config file and FV_ environment variables, as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(global.configPath)
			if err != nil {
				return err
			}
			data, err := cfg.ToYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the default config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile())
			return err
		},
	})

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	v, err := config.NewViper(path)
	if err != nil {
		return nil, err
	}
	return config.Load(v)
}
