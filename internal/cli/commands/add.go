package commands

import (
	"TodoKeeper/internal/cli/service"
	"TodoKeeper/internal/config"
	"context"
	"flag"
	"fmt"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Добавить задачу, опционально со сроком" }
func (addCmd) Usage() string       { return `add <text> [--due "tomorrow 17:00"]` }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	dueStr := fs.String("due", "", "due date: RFC3339 or natural language")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return ErrUsage
	}
	if len(pos) != 1 || pos[0] == "" {
		return ErrUsage
	}
	due, err := parseDue(*dueStr)
	if err != nil {
		return err
	}

	client, err := service.NewTodoClient(cfg)
	if err != nil {
		return err
	}
	todo, err := client.Create(pos[0], due)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:   %s\n", todo.ID)
	fmt.Fprintf(Out, "  text: %s\n", todo.Text)
	if due := formatDue(todo.DueDate); due != "" {
		fmt.Fprintf(Out, "  due:  %s\n", due)
	}
	return nil
}

func init() { RegisterCmd(addCmd{}) }
