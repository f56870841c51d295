// Package repl implements the line-oriented command loop over a task store.
//
// The loop reads one command per line, tokenizes it shell-style (quoted
// arguments survive as single tokens), and dispatches to the store. Store
// errors are reported and the loop continues; only exit or end of input
// terminates it. The store lives exactly as long as the loop: nothing is
// persisted.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idlewild/taskline/internal/config"
	"github.com/idlewild/taskline/internal/ui"
	"github.com/idlewild/taskline/task"
)

// Options tune loop behavior.
type Options struct {
	// Prompt is printed before each read when Interactive is set.
	Prompt string

	// Interactive enables the prompt. Piped input stays clean without it.
	Interactive bool

	// ConfirmDelete asks before deleting a task.
	ConfirmDelete bool

	// Styles controls colored output.
	Styles ui.Styles

	// Logger receives per-operation diagnostics.
	Logger *log.Logger

	// Width is the rendering width for task detail output.
	Width int

	// Now supplies the current time for age columns. Defaults to time.Now.
	Now func() time.Time
}

// Repl drives a task store from a line-oriented input stream.
type Repl struct {
	store   *task.Store
	scanner *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
	opts    Options
}

// New returns a loop over store reading from in and writing to out/errOut.
func New(store *task.Store, in io.Reader, out, errOut io.Writer, opts Options) *Repl {
	if opts.Prompt == "" {
		opts.Prompt = config.DefaultPrompt
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Repl{
		store:   store,
		scanner: bufio.NewScanner(in),
		out:     out,
		errOut:  errOut,
		opts:    opts,
	}
}

// Run prints the welcome banner and processes commands until exit or EOF.
func (r *Repl) Run() error {
	r.banner()
	for {
		if r.opts.Interactive {
			fmt.Fprint(r.out, r.opts.Prompt)
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}
		if quit := r.Dispatch(r.scanner.Text()); quit {
			return nil
		}
	}
}

func (r *Repl) banner() {
	styles := r.opts.Styles
	fmt.Fprintln(r.out, styles.Render(styles.Title, "taskline"), "- in-memory task manager")
	fmt.Fprintln(r.out, styles.Render(styles.Muted, "Tasks are volatile and lost on exit. Type help for commands."))
}

// readLine reads one raw line, for confirmation prompts inside a command.
func (r *Repl) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}
