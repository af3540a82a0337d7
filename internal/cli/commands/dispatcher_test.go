package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"TodoKeeper/internal/config"
)

func withCapturedOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := Out
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}

func TestDispatch_UnknownCommand(t *testing.T) {
	buf := withCapturedOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"frobnicate"})
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Unknown command: frobnicate") {
		t.Fatalf("expected unknown-command message, got %q", buf.String())
	}
}

func TestDispatch_NoArgsShowsUsage(t *testing.T) {
	buf := withCapturedOut(t)
	code := Dispatch(context.Background(), &config.Config{}, nil)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "TodoKeeper CLI") {
		t.Fatalf("expected global usage, got %q", buf.String())
	}
}

func TestDispatch_HelpForCommand(t *testing.T) {
	buf := withCapturedOut(t)
	code := Dispatch(context.Background(), &config.Config{}, []string{"help", "login"})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "login <login> <password>") {
		t.Fatalf("expected login usage, got %q", buf.String())
	}
}

func TestDispatch_UsageErrorFromCommand(t *testing.T) {
	buf := withCapturedOut(t)
	// login без аргументов — ErrUsage
	code := Dispatch(context.Background(), &config.Config{}, []string{"login"})
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Usage: login") {
		t.Fatalf("expected usage line, got %q", buf.String())
	}
}
