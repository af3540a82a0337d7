package commands

import (
	"TodoKeeper/internal/cli/service"
	"TodoKeeper/internal/config"
	"context"
	"flag"
)

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Изменить текст задачи и/или срок" }
func (editCmd) Usage() string       { return `edit <id|prefix> <text> [--due "friday 12:00"]` }

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	dueStr := fs.String("due", "", "new due date (empty keeps the stored one)")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return ErrUsage
	}
	if len(pos) != 2 || pos[1] == "" {
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
	list, err := client.Fetch()
	if err != nil {
		return err
	}
	t, err := resolveTodo(list, pos[0])
	if err != nil {
		return err
	}
	updated, err := client.Update(t.ID, pos[1], t.IsComplete, due)
	if err != nil {
		return err
	}
	printTodo(*updated)
	return nil
}

func init() { RegisterCmd(editCmd{}) }
