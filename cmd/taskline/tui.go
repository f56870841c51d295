package main

import (
	"github.com/spf13/cobra"

	"github.com/idlewild/taskline/internal/tui"
	"github.com/idlewild/taskline/task"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse tasks in a full-screen interactive view",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return tui.Run(task.NewStore(), newStyles(cfg))
}
