package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/inspection-registry/internal/app"
	"github.com/heartmarshall/inspection-registry/internal/config"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "registry",
		Short:         "Registry of product inspections in Bosnia and Herzegovina",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(newServeCmd(opts), newMigrateCmd(opts), newVersionCmd())
	return root
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.LoadFrom(o.resolvedConfigPath())
}

// resolvedConfigPath is the --config flag, falling back to CONFIG_PATH.
func (o *rootOptions) resolvedConfigPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	return os.Getenv("CONFIG_PATH")
}
