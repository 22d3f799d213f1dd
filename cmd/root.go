package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sponsor-gap-api/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sponsor-gap-api",
	Short: "Sponsorship gap analysis pipeline",
	Long:  "Researches a club's sponsorship portfolio via a search-grounded model, then derives industry-vertical gaps via a second model pass.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
