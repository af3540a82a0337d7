package commands

import (
	"TodoKeeper/internal/cli/service"
	"TodoKeeper/internal/config"
	"context"
	"fmt"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать все задачи (по возрастанию срока)" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
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
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет задач")
		return nil
	}
	remaining := 0
	for _, t := range list {
		printTodo(t)
		if !t.IsComplete {
			remaining++
		}
	}
	fmt.Fprintf(Out, "Всего: %d, осталось: %d\n", len(list), remaining)
	return nil
}

func init() { RegisterCmd(listCmd{}) }
