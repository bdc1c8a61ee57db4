package main

import (
	"github.com/spf13/cobra"

	website "github.com/servetdekorasyon/website"
	"github.com/servetdekorasyon/website/gateway"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate configuration and report the gateway mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			module, err := website.New(cfg)
			if err != nil {
				return err
			}
			defer module.Close()

			mode := module.Gateway().Mode()
			cmd.Printf("configuration: ok\n")
			cmd.Printf("listen address: %s\n", cfg.Server.ListenAddr)
			cmd.Printf("gateway mode: %s\n", mode)
			if cfg.Storage.Driver != "" {
				cmd.Printf("storage: %s\n", cfg.Storage.Driver)
			} else if mode == gateway.ModeDegraded {
				cmd.Printf("storage: none (serving built-in demo content)\n")
			} else {
				cmd.Printf("backend: %s\n", cfg.Backend.URL)
			}

			// A read probe shows whether live content is actually reachable.
			posts, err := module.Posts().List(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("posts visible: %d\n", len(posts))

			snapshot, err := module.Settings().Load(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("company: %s\n", snapshot.CompanyName())
			return nil
		},
	}
}
