// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/openlogistics-io/referencedata/internal/config"
)

var (
	cfg config.Config
	err error

	configPath string // Path to the configuration directory
)

var rootCmd = &cobra.Command{
	Use:   "referencedata",
	Short: "referencedata serves the supply chain reference data API",
	Long: `referencedata is the reference data service of the supply chain
stack: facilities, programs, orderables, the supervision hierarchy and the
right-based access control other services query before acting.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
