package auth

import (
	"TodoKeeper/internal/cli/repo/fs"
	"TodoKeeper/internal/config"
)

// LoadToken читает сохранённый auth-токен по пути из конфига.
func LoadToken(cfg *config.Config) (string, error) {
	store := fs.AuthFSStore{TokenPath: cfg.TokenFile}
	return store.Load()
}

// ClearToken удаляет сохранённый auth-токен (logout).
func ClearToken(cfg *config.Config) error {
	store := fs.AuthFSStore{TokenPath: cfg.TokenFile}
	return store.Clear()
}
