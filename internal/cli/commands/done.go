package commands

import (
	"TodoKeeper/internal/cli/service"
	"TodoKeeper/internal/config"
	"context"
)

type doneCmd struct{}

func (doneCmd) Name() string        { return "done" }
func (doneCmd) Description() string { return "Переключить признак выполнения задачи" }
func (doneCmd) Usage() string       { return "done <id|prefix>" }

func (doneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	client, err := service.NewTodoClient(cfg)
	if err != nil {
		return err
	}
	list, err := client.Fetch()
	if err != nil {
		return err
	}
	t, err := resolveTodo(list, args[0])
	if err != nil {
		return err
	}
	updated, err := client.Toggle(*t)
	if err != nil {
		return err
	}
	printTodo(*updated)
	return nil
}

func init() { RegisterCmd(doneCmd{}) }
