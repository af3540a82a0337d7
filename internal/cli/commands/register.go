package commands

import (
	"TodoKeeper/internal/cli/api"
	fsrepo "TodoKeeper/internal/cli/repo/fs"
	"TodoKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a new account and store auth cookie" }
func (registerCmd) Usage() string       { return "register <login> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	login := args[0]
	password := args[1]
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/register"
	resp, body, err := api.PostJSON(endpoint, RegisterRequest{Login: login, Password: password}, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		if err := api.PersistAuthFromResponse(resp, cfg.TokenFile); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		_ = fsrepo.AuthFSStore{}.SaveLogin(login)
		fmt.Fprintln(Out, "Registered and logged in successfully")
		return nil
	case http.StatusConflict:
		return errors.New("login already taken")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(registerCmd{}) }
