package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run <club name>",
	Short: "Run gap analysis for a single club and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		club := args[0]

		p, err := initPipeline()
		if err != nil {
			return err
		}

		result, err := p.Run(cmd.Context(), club)
		if err != nil {
			zap.L().Error("gap analysis failed", zap.String("club", club), zap.Error(err))
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}

		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
