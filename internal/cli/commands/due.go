package commands

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// parseDue понимает RFC3339 и естественный язык ("tomorrow 17:00").
func parseDue(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	r, err := w.Parse(s, time.Now())
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("cannot parse due date: %q", s)
	}
	t := r.Time
	return &t, nil
}

// formatDue — короткий формат срока для вывода списка.
func formatDue(t *time.Time) string {
	if t == nil {
		return ""
	}
	s := t.Local().Format("02 Jan 15:04")
	if t.Before(time.Now()) {
		s += " (overdue)"
	}
	return s
}
