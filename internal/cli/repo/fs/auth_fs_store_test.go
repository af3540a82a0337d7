package fs

import (
	"path/filepath"
	"testing"
)

func TestAuthFSStore_SaveLoadClear(t *testing.T) {
	store := AuthFSStore{TokenPath: filepath.Join(t.TempDir(), "auth_token")}

	if err := store.Save("tok-123\n"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	// завершающие пробелы/переводы строки обрезаются
	if got != "tok-123" {
		t.Fatalf("expected trimmed token, got %q", got)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("load after clear must fail")
	}
	// повторный clear — не ошибка
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear must be a no-op, got %v", err)
	}
}

func TestAuthFSStore_SaveLoadLogin(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	store := AuthFSStore{}
	if err := store.SaveLogin("alice"); err != nil {
		t.Fatalf("save login failed: %v", err)
	}
	login, err := store.LoadLogin()
	if err != nil {
		t.Fatalf("load login failed: %v", err)
	}
	if login != "alice" {
		t.Fatalf("expected 'alice', got %q", login)
	}

	if err := store.SaveLogin(""); err == nil {
		t.Fatalf("empty login must be rejected")
	}
}
