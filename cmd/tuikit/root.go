package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuikit/internal/config"
)

type rootFlags struct {
	configPath string
	side       string
	align      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tuikit",
		Short:         "Interactive showcase for the tuikit dropdown menus",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runDemo(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.side, "side", "", "Preferred menu side: top, bottom, left or right")
	cmd.PersistentFlags().StringVar(&flags.align, "align", "", "Preferred menu alignment: start, center or end")

	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the configuration and applies command-line overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.side != "" {
		cfg.Dropdown.Side = flags.side
	}
	if flags.align != "" {
		cfg.Dropdown.Align = flags.align
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
