// Package main implements the taskline CLI tool.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/idlewild/taskline/internal/config"
	"github.com/idlewild/taskline/internal/logging"
	"github.com/idlewild/taskline/internal/repl"
	"github.com/idlewild/taskline/internal/ui"
	"github.com/idlewild/taskline/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskline",
	Short: "Taskline - in-memory task manager with a line-oriented interface",
	Long: `Taskline keeps a session-scoped task list in memory and edits it
through a line-oriented command loop. Tasks are lost when the process
exits.`,
	SilenceUsage: true,
	RunE:         runRepl,
}

var (
	flagVerbose   bool
	flagNoConfirm bool
	flagColor     string
	flagPrompt    string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug diagnostics")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "", "Colored output: auto, always, or never")
	rootCmd.Flags().BoolVar(&flagNoConfirm, "no-confirm", false, "Skip the delete confirmation prompt")
	rootCmd.Flags().StringVar(&flagPrompt, "prompt", "", "Override the interactive prompt")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	prompt := cfg.PromptString()
	if flagPrompt != "" {
		prompt = flagPrompt
	}
	confirm := cfg.ConfirmDelete() && interactive
	if flagNoConfirm {
		confirm = false
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	r := repl.New(task.NewStore(), os.Stdin, os.Stdout, os.Stderr, repl.Options{
		Prompt:        prompt,
		Interactive:   interactive,
		ConfirmDelete: confirm,
		Styles:        newStyles(cfg),
		Logger:        newLogger(cfg),
		Width:         width,
	})
	return r.Run()
}

func loadConfig() (*config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Load(workDir)
}

func newStyles(cfg *config.Config) ui.Styles {
	mode := ui.ParseColorMode(cfg.UI.Color)
	if flagColor != "" {
		mode = ui.ParseColorMode(flagColor)
	}
	return ui.NewStyles(mode)
}

func newLogger(cfg *config.Config) *log.Logger {
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.Log.Level)
	if flagVerbose {
		opts.Level = log.DebugLevel
	}
	return logging.New(os.Stderr, opts)
}
