package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/pflag"

	"github.com/idlewild/taskline/internal/markdown"
	internalstrings "github.com/idlewild/taskline/internal/strings"
	"github.com/idlewild/taskline/internal/ui"
	"github.com/idlewild/taskline/task"
)

// Dispatch tokenizes and executes a single command line. It returns true
// when the loop should terminate.
func (r *Repl) Dispatch(line string) bool {
	tokens, err := shlex.Split(line)
	if err != nil {
		r.fail(fmt.Errorf("parse command: %w", err))
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	verb, args := strings.ToLower(tokens[0]), tokens[1:]
	r.opts.Logger.Debug("dispatch",
		"verb", verb,
		"line", internalstrings.NormalizeWhitespace(line),
	)

	switch verb {
	case "add":
		r.doAdd(args)
	case "list", "ls":
		r.doList()
	case "show":
		r.doShow(args)
	case "update":
		r.doUpdate(args)
	case "delete", "rm":
		r.doDelete(args)
	case "complete", "done":
		r.doComplete(args)
	case "incomplete", "undone":
		r.doIncomplete(args)
	case "help":
		r.doHelp()
	case "exit", "quit":
		fmt.Fprintln(r.out, "Goodbye.")
		return true
	default:
		r.fail(fmt.Errorf("unknown command %q (try help)", verb))
	}
	return false
}

func (r *Repl) doAdd(args []string) {
	if len(args) < 1 || len(args) > 2 {
		r.usage(`add <title> [description]`)
		return
	}
	title := args[0]
	description := ""
	if len(args) == 2 {
		description = args[1]
	}

	created, err := r.store.Add(title, description)
	if err != nil {
		r.fail(err)
		return
	}
	r.ok(fmt.Sprintf("Added task %d: %s", created.ID, created.Title))
}

func (r *Repl) doList() {
	tasks := r.store.List()
	if len(tasks) == 0 {
		fmt.Fprintln(r.out, `No tasks yet. Add one with: add "Buy milk"`)
		return
	}

	now := r.opts.Now()
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "AGE", "TITLE", "DESCRIPTION"}, len(tasks))
	done := 0
	for _, t := range tasks {
		if t.Status == task.StatusComplete {
			done++
		}
		builder.AddRow([]string{
			strconv.Itoa(t.ID),
			r.renderStatus(t.Status),
			ui.FormatTimeAgeShort(t.CreatedAt, now),
			ui.TruncateTableCell(t.Title),
			ui.TruncateTableCell(t.Description),
		})
	}
	fmt.Fprint(r.out, builder.String())

	styles := r.opts.Styles
	summary := fmt.Sprintf("%d tasks, %d complete", len(tasks), done)
	if len(tasks) == 1 {
		summary = fmt.Sprintf("1 task, %d complete", done)
	}
	fmt.Fprintln(r.out, styles.Render(styles.Muted, summary))
}

func (r *Repl) doShow(args []string) {
	if len(args) != 1 {
		r.usage(`show <id>`)
		return
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		r.fail(err)
		return
	}
	t, err := r.store.Get(id)
	if err != nil {
		r.fail(err)
		return
	}

	styles := r.opts.Styles
	fmt.Fprintf(r.out, "%s %s\n", styles.Render(styles.Title, fmt.Sprintf("Task %d:", t.ID)), t.Title)
	fmt.Fprintf(r.out, "  Status:  %s\n", r.renderStatus(t.Status))
	fmt.Fprintf(r.out, "  Created: %s (%s)\n",
		t.CreatedAt.Format("2006-01-02 15:04"),
		ui.FormatTimeAgo(t.CreatedAt, r.opts.Now()),
	)
	if t.HasDescription() {
		fmt.Fprintln(r.out, "  Description:")
		fmt.Fprintln(r.out, string(r.renderDescription(t.Description)))
	}
}

func (r *Repl) doUpdate(args []string) {
	if len(args) < 1 {
		r.usage(`update <id> [--title <title>] [--description <description>]`)
		return
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		r.fail(err)
		return
	}

	flags := pflag.NewFlagSet("update", pflag.ContinueOnError)
	title := flags.String("title", "", "new title")
	description := flags.String("description", "", "new description")
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "desc" {
			name = "description"
		}
		return pflag.NormalizedName(name)
	})
	if err := flags.Parse(args[1:]); err != nil {
		r.fail(fmt.Errorf("parse update flags: %w", err))
		return
	}

	opts := task.UpdateOptions{}
	if flags.Changed("title") {
		opts.Title = title
	}
	if flags.Changed("description") {
		opts.Description = description
	}

	updated, err := r.store.Update(id, opts)
	if err != nil {
		r.fail(err)
		return
	}
	r.ok(fmt.Sprintf("Updated task %d", updated.ID))
}

func (r *Repl) doDelete(args []string) {
	if len(args) != 1 {
		r.usage(`delete <id>`)
		return
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		r.fail(err)
		return
	}
	t, err := r.store.Get(id)
	if err != nil {
		r.fail(err)
		return
	}

	if r.opts.ConfirmDelete {
		fmt.Fprintf(r.out, "Delete task %d %q? [y/n]: ", t.ID, t.Title)
		answer, ok := r.readLine()
		if !ok || !isYes(answer) {
			fmt.Fprintln(r.out, "Deletion cancelled.")
			return
		}
	}

	if err := r.store.Delete(id); err != nil {
		r.fail(err)
		return
	}
	r.ok(fmt.Sprintf("Deleted task %d", id))
}

func (r *Repl) doComplete(args []string) {
	if len(args) != 1 {
		r.usage(`complete <id>`)
		return
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		r.fail(err)
		return
	}
	t, err := r.store.Complete(id)
	if err != nil {
		r.fail(err)
		return
	}
	r.ok(fmt.Sprintf("Marked task %d complete %s", t.ID, t.Status.Checkbox()))
}

func (r *Repl) doIncomplete(args []string) {
	if len(args) != 1 {
		r.usage(`incomplete <id>`)
		return
	}
	id, err := task.ParseID(args[0])
	if err != nil {
		r.fail(err)
		return
	}
	t, err := r.store.Incomplete(id)
	if err != nil {
		r.fail(err)
		return
	}
	r.ok(fmt.Sprintf("Marked task %d incomplete %s", t.ID, t.Status.Checkbox()))
}

func (r *Repl) doHelp() {
	fmt.Fprint(r.out, `Commands:
  add <title> [description]                       Create a task
  list                                            List all tasks
  show <id>                                       Show task detail
  update <id> [--title <t>] [--description <d>]   Change fields
  delete <id>                                     Remove a task
  complete <id>                                   Mark complete
  incomplete <id>                                 Mark incomplete
  help                                            Show this help
  exit                                            Quit

Quote arguments that contain spaces: add "Buy milk" "Whole, not skim"
`)
}

func (r *Repl) renderStatus(status task.Status) string {
	styles := r.opts.Styles
	label := status.Checkbox() + " " + string(status)
	if status == task.StatusComplete {
		return styles.Render(styles.Success, label)
	}
	return styles.Render(styles.Pending, label)
}

func (r *Repl) renderDescription(description string) []byte {
	const indent = 4
	if r.opts.Styles.Enabled() {
		return markdown.Render(r.opts.Width, indent, []byte(description))
	}
	return markdown.Plain(r.opts.Width, indent, []byte(description))
}

func (r *Repl) ok(msg string) {
	styles := r.opts.Styles
	fmt.Fprintln(r.out, styles.Render(styles.Success, msg))
}

func (r *Repl) fail(err error) {
	kind := "internal"
	switch {
	case task.IsValidation(err):
		kind = "validation"
	case task.IsNotFound(err):
		kind = "not_found"
	}
	r.opts.Logger.Debug("command failed", "kind", kind, "err", err)

	styles := r.opts.Styles
	fmt.Fprintln(r.errOut, styles.Render(styles.Error, "error: "+err.Error()))
}

func (r *Repl) usage(form string) {
	styles := r.opts.Styles
	fmt.Fprintln(r.errOut, styles.Render(styles.Error, "usage: "+form))
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
