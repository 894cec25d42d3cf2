package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/output"
	"ltask/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `ltask` (no command) and `ltask list [--all]`.
type ListCmd struct {
	all bool
}

// SetAll sets the --all flag value (for testing).
func (c *ListCmd) SetAll(all bool) {
	c.all = all
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "ltask list [--all]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.Failure
	}

	tasks, err := st.List(ctx, c.all)
	if err != nil {
		return report(errOut, err)
	}

	if len(tasks) == 0 {
		msg := "No tasks found."
		if !c.all {
			// Distinguish an empty store from one where everything
			// is already done.
			all, err := st.List(ctx, true)
			if err != nil {
				return report(errOut, err)
			}
			if len(all) > 0 {
				msg = "No incomplete tasks found."
			}
		}
		if !cfg.Quiet {
			fmt.Fprintln(out, msg)
		}
		return exitcode.Success
	}

	output.FormatHeader(out)
	for _, t := range tasks {
		output.FormatTask(out, t)
	}
	output.FormatFooter(out)
	return exitcode.Success
}
