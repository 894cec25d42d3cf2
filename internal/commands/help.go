package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/exitcode"
	"ltask/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ltask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st service.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ltask                                             List incomplete tasks
  ltask list [common flags] [--all]                 List tasks (--all includes completed)
  ltask add [common flags] [-d/--description <text>] <title...>
  ltask complete [common flags] <id>
  ltask delete [common flags] <id>
  ltask help
  ltask version

Aliases:
  a = add, ls = list, done = complete, rm = delete

Common flags:
  --tasks-file <path>  Override the store file (default: tasks.json)
  --config <dir>       Override config directory
  --quiet              Suppress informational output
  --debug              Print debug logs to stderr
`
