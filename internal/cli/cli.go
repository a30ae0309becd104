package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tiwariParth/todo/internal/app"
	"github.com/tiwariParth/todo/internal/config"
	"github.com/tiwariParth/todo/internal/storage/file"
	"github.com/tiwariParth/todo/internal/task"
)

// CLI represents the command-line interface.
type CLI struct {
	cfg    config.Config
	logger *log.Logger
	opts   []task.Option
}

// NewCLI initializes a new CLI. opts are passed to every TaskStore it loads.
func NewCLI(cfg config.Config, logger *log.Logger, opts ...task.Option) *CLI {
	if logger == nil {
		logger = log.Default()
	}
	return &CLI{cfg: cfg, logger: logger, opts: opts}
}

// Run executes the CLI based on the provided arguments.
func (c *CLI) Run(args []string) error {
	root := c.Command()
	root.SetArgs(args)
	return root.Execute()
}

// Command builds the command tree.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "todo",
		Short:         "A personal todo list",
		Long:          `Add, edit, remove and list todo items kept in ` + config.FileName + ` in your home directory.`,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		&cobra.Command{
			Use:   "add <item>",
			Short: "Add a new todo item",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := c.open(cmd)
				if err != nil {
					return err
				}
				return a.Add(strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "remove <index>",
			Short: "Remove a todo item",
			Args:  indexArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, _ := strconv.Atoi(args[0])
				a, err := c.open(cmd)
				if err != nil {
					return err
				}
				return a.Remove(index)
			},
		},
		&cobra.Command{
			Use:   "edit <index> <new_content>",
			Short: "Edit a todo item",
			Args:  indexArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				index, _ := strconv.Atoi(args[0])
				a, err := c.open(cmd)
				if err != nil {
					return err
				}
				return a.Edit(index, strings.Join(args[1:], " "))
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all todo items",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := c.open(cmd)
				if err != nil {
					return err
				}
				a.List()
				return nil
			},
		},
	)
	return root
}

// open loads the task list for a command whose arguments already passed
// validation, so later failures no longer print usage.
func (c *CLI) open(cmd *cobra.Command) (*app.TodoApp, error) {
	cmd.SilenceUsage = true

	st, err := file.NewFileStore(c.cfg.DataFile)
	if err != nil {
		return nil, err
	}

	opts := append([]task.Option{task.WithLogger(c.logger)}, c.opts...)
	store, err := task.Load(st, opts...)
	if err != nil {
		return nil, err
	}
	return app.NewTodoApp(store, cmd.OutOrStdout()), nil
}

// indexArgs requires at least n arguments, the first a decimal index.
func indexArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return err
		}
		if _, err := strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid index %q: must be a number", args[0])
		}
		return nil
	}
}
