package commands

import (
	"fmt"
	"strings"

	"TodoKeeper/internal/cli/model"
)

// resolveTodo ищет задачу по полному id или уникальному префиксу.
func resolveTodo(list []model.Todo, arg string) (*model.Todo, error) {
	var found *model.Todo
	for i := range list {
		if list[i].ID == arg {
			return &list[i], nil
		}
		if strings.HasPrefix(list[i].ID, arg) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous id prefix: %q", arg)
			}
			found = &list[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no todo with id %q", arg)
	}
	return found, nil
}

// printTodo выводит одну строку списка.
func printTodo(t model.Todo) {
	box := "[ ]"
	if t.IsComplete {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %-8s %s", box, t.ID[:min(8, len(t.ID))], t.Text)
	if due := formatDue(t.DueDate); due != "" {
		line += "  due " + due
	}
	fmt.Fprintln(Out, line)
}
