package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Iron-Ham/tasklist/internal/errors"
	"github.com/Iron-Ham/tasklist/internal/filter"
	"github.com/Iron-Ham/tasklist/internal/render"
	"github.com/Iron-Ham/tasklist/internal/session"
	"github.com/Iron-Ham/tasklist/internal/task"
	"github.com/Iron-Ham/tasklist/internal/util"
)

var (
	addDue       string
	listFilter   = filter.All
	editDue      string
	editClearDue bool
	clearYes     bool
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Long: `Add a task at the top of the list.

Examples:
  tasklist add Buy milk
  tasklist add "File taxes" --due 2026-04-30`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			return runAdd(ctx, cmd.OutOrStdout(), env.session, strings.Join(args, " "), addDue)
		})
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			return runList(ctx, cmd.OutOrStdout(), env.session, listFilter, env.locale())
		})
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a task done, or pending again",
	Long:  `Mark a task done, or pending again. The id may be any unique prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			return runToggle(ctx, cmd.OutOrStdout(), env.session, args[0])
		})
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Change a task's text and due date",
	Long: `Change a task's text. The due date is kept unless --due or --clear-due
is given. The id may be any unique prefix.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if editClearDue && editDue != "" {
			return fmt.Errorf("--due and --clear-due cannot be used together")
		}
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			return runEdit(ctx, cmd.OutOrStdout(), env.session, args[0], strings.Join(args[1:], " "), editDue, editClearDue)
		})
	},
}

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The lingering delete is a TUI affordance; here it is immediate.
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			return runRemove(ctx, cmd.OutOrStdout(), env.session, args[0])
		}, session.WithDeleteDelay(0))
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every task",
	Long: `Delete every task. Asks for confirmation on a terminal; pass --yes
when running non-interactively.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			confirm := func(prompt string) (bool, error) {
				if clearYes {
					return true, nil
				}
				if !isTerminal(os.Stdin) {
					return false, fmt.Errorf("%w: pass --yes to clear without a terminal", errors.ErrConfirmationRequired)
				}
				return promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
			}
			return runClear(ctx, cmd.OutOrStdout(), env.session, env.locale(), confirm)
		})
	},
}

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	listCmd.Flags().Var(filter.NewFlag(&listFilter), "filter", "show all, pending or done tasks")
	editCmd.Flags().StringVar(&editDue, "due", "", "new due date (YYYY-MM-DD)")
	editCmd.Flags().BoolVar(&editClearDue, "clear-due", false, "remove the due date")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(addCmd, listCmd, toggleCmd, editCmd, rmCmd, clearCmd)
}

// withEnv opens the environment, runs fn, and closes it.
func withEnv(cmd *cobra.Command, fn func(context.Context, *appEnv) error, opts ...session.Option) error {
	ctx := cmd.Context()
	env, err := openEnv(ctx, opts...)
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(ctx, env)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// promptYesNo writes prompt and reads one line. Only "y" and "yes" agree.
func promptYesNo(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// dispatch applies cmd and turns a rejection into an error.
func dispatch(ctx context.Context, sess *session.Session, cmd session.Command) (session.Result, error) {
	res, err := sess.Dispatch(ctx, cmd)
	if err != nil {
		return res, err
	}
	if res.Rejected != nil {
		return res, res.Rejected
	}
	return res, nil
}

func runAdd(ctx context.Context, w io.Writer, sess *session.Session, text, dueArg string) error {
	due, err := task.ParseDate(dueArg)
	if err != nil {
		return err
	}
	res, err := dispatch(ctx, sess, session.Add{Text: text, Due: due})
	if err != nil {
		return err
	}
	t, _ := task.Find(sess.State().Tasks, res.TaskID)
	fmt.Fprintf(w, "Added %s: %s\n", util.ShortID(t.ID), t.Text)
	return nil
}

func runList(ctx context.Context, w io.Writer, sess *session.Session, mode filter.Mode, locale render.Locale) error {
	if _, err := dispatch(ctx, sess, session.SetFilter{Mode: mode}); err != nil {
		return err
	}
	v := sess.View(render.Options{Locale: locale})
	if v.Empty {
		fmt.Fprintln(w, "No tasks.")
		fmt.Fprintln(w, v.Stats)
		return nil
	}

	dues := make([]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		dues = append(dues, dueLabel(r))
	}
	dueW := max(util.MaxWidth(dues...), util.MaxWidth("DUE"))
	badgeW := util.MaxWidth(render.BadgePending, render.BadgeDone)

	fmt.Fprintf(w, "%s  %s  %s  %s\n",
		util.PadRight("ID", util.ShortIDLen),
		util.PadRight("STATUS", badgeW),
		util.PadRight("DUE", dueW),
		"TASK")
	for i, r := range v.Rows {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			util.PadRight(util.ShortID(r.ID), util.ShortIDLen),
			util.PadRight(r.Badge, badgeW),
			util.PadRight(dues[i], dueW),
			util.SingleLine(r.Text))
	}
	fmt.Fprintln(w, v.Stats)
	return nil
}

func dueLabel(r render.Row) string {
	if r.Overdue {
		return "⚠ " + r.DueLabel
	}
	return r.DueLabel
}

func runToggle(ctx context.Context, w io.Writer, sess *session.Session, ref string) error {
	id, err := task.ResolveID(sess.State().Tasks, ref)
	if err != nil {
		return err
	}
	if _, err := dispatch(ctx, sess, session.Toggle{ID: id}); err != nil {
		return err
	}
	t, _ := task.Find(sess.State().Tasks, id)
	if t.Done {
		fmt.Fprintf(w, "Done: %s\n", t.Text)
	} else {
		fmt.Fprintf(w, "Pending: %s\n", t.Text)
	}
	return nil
}

func runEdit(ctx context.Context, w io.Writer, sess *session.Session, ref, text, dueArg string, clearDue bool) error {
	id, err := task.ResolveID(sess.State().Tasks, ref)
	if err != nil {
		return err
	}
	current, _ := task.Find(sess.State().Tasks, id)

	due := current.Due
	switch {
	case clearDue:
		due = task.Date{}
	case dueArg != "":
		if due, err = task.ParseDate(dueArg); err != nil {
			return err
		}
	}

	if _, err := dispatch(ctx, sess, session.StartEdit{ID: id}); err != nil {
		return err
	}
	if _, err := dispatch(ctx, sess, session.SaveEdit{ID: id, Text: text, Due: due}); err != nil {
		return err
	}
	t, _ := task.Find(sess.State().Tasks, id)
	fmt.Fprintf(w, "Updated %s: %s\n", util.ShortID(id), t.Text)
	return nil
}

func runRemove(ctx context.Context, w io.Writer, sess *session.Session, ref string) error {
	id, err := task.ResolveID(sess.State().Tasks, ref)
	if err != nil {
		return err
	}
	t, _ := task.Find(sess.State().Tasks, id)
	if _, err := dispatch(ctx, sess, session.RequestDelete{ID: id}); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %s: %s\n", util.ShortID(id), t.Text)
	return nil
}

func runClear(ctx context.Context, w io.Writer, sess *session.Session, locale render.Locale, confirm func(prompt string) (bool, error)) error {
	if _, err := dispatch(ctx, sess, session.RequestClear{}); err != nil {
		return err
	}
	if !sess.State().ConfirmingClear {
		fmt.Fprintln(w, "Nothing to delete.")
		return nil
	}

	yes, err := confirm(render.ClearPrompt(locale))
	if err != nil {
		_, _ = dispatch(ctx, sess, session.ConfirmClear{Yes: false})
		return err
	}
	res, err := dispatch(ctx, sess, session.ConfirmClear{Yes: yes})
	if err != nil {
		return err
	}
	if res.Changed {
		fmt.Fprintln(w, "All tasks deleted.")
	} else {
		fmt.Fprintln(w, "Cancelled.")
	}
	return nil
}
