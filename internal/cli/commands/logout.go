package commands

import (
	"TodoKeeper/internal/cli/api"
	"TodoKeeper/internal/cli/auth"
	"TodoKeeper/internal/config"
	"context"
	"fmt"
	"strings"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Drop the stored auth token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	// уведомляем сервер (best effort), локальный токен удаляем в любом случае
	if token, err := auth.LoadToken(cfg); err == nil {
		endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/logout"
		if resp, _, err := api.GetJSON(endpoint, token); err == nil {
			resp.Body.Close()
		}
	}
	if err := auth.ClearToken(cfg); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
