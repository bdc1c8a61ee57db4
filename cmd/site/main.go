// Command site runs the Servet Dekorasyon website backend: a JSON API over
// the content services, a seeder for self-hosted storage, and a
// configuration check.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	website "github.com/servetdekorasyon/website"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "site",
		Short:         "Servet Dekorasyon website backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "site.toml", "path to the TOML configuration file")

	root.AddCommand(newServeCommand())
	root.AddCommand(newSeedCommand())
	root.AddCommand(newCheckCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (website.Config, error) {
	return website.LoadConfig(configPath)
}
