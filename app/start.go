package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/openlogistics-io/referencedata/internal/config"
	"github.com/openlogistics-io/referencedata/internal/daemon"
	"github.com/openlogistics-io/referencedata/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the reference data web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			service := daemon.New(&cfg)

			go func() {
				if err := service.Start(); err != nil {
					log.Fatal().Err(err).Msg("web service failed")
				}
			}()

			service.WaitShutdown()

			return nil
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			dump, err := config.DumpConfigJSON(cfg)
			if err != nil {
				return err
			}

			cmd.Println(dump)

			return nil
		},
	}
)
