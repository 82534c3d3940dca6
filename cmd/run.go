package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mdevan/gosh/core/history"
	"github.com/mdevan/gosh/core/shell"
)

// runCmd starts the interactive read-eval loop.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		hist, err := history.Load(afero.NewOsFs(), configuration.HistoryPath())
		if err != nil {
			return err
		}

		sh, err := shell.New(configuration, hist)
		if err != nil {
			return err
		}
		defer sh.Close()

		return sh.Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
