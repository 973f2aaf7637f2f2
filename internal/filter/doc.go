// Package filter selects which tasks are visible.
//
// # Modes
//
//   - [All]: every task, in collection order
//   - [Pending]: tasks not yet done
//   - [Done]: completed tasks
//
// Filtering never reorders or mutates the collection; it only decides
// visibility. The mode is session state and is not persisted.
//
// # Usage
//
//	visible := filter.Apply(tasks, filter.Pending)
//
//	mode = mode.Next() // all -> pending -> done -> all
//
// [Flag] adapts a *Mode to pflag.Value so command-line flags reject unknown
// modes at parse time:
//
//	mode := filter.All
//	cmd.Flags().Var(filter.NewFlag(&mode), "filter", "all, pending or done")
package filter
