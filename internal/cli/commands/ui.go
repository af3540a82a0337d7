package commands

import (
	"TodoKeeper/internal/cli/service"
	"TodoKeeper/internal/cli/ui"
	"TodoKeeper/internal/config"
	"context"
)

type uiCmd struct{}

func (uiCmd) Name() string        { return "ui" }
func (uiCmd) Description() string { return "Интерактивный список задач" }
func (uiCmd) Usage() string       { return "ui" }

func (uiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	client, err := service.NewTodoClient(cfg)
	if err != nil {
		return err
	}
	return ui.Run(client)
}

func init() { RegisterCmd(uiCmd{}) }
