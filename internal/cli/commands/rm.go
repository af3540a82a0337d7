package commands

import (
	"TodoKeeper/internal/cli/service"
	"TodoKeeper/internal/config"
	"context"
	"fmt"
)

type rmCmd struct{}

func (rmCmd) Name() string        { return "rm" }
func (rmCmd) Description() string { return "Удалить задачу (безвозвратно)" }
func (rmCmd) Usage() string       { return "rm <id|prefix>" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	if _, err := client.Delete(t.ID); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %s\n", t.Text)
	return nil
}

func init() { RegisterCmd(rmCmd{}) }
