package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// root runs the command loop: load and show the table, then read commands
// until EOF or exit. Command handlers convert every failure into controller
// state, so the loop itself never sees an error.
func (a *App) root(ctx context.Context) {
	fmt.Fprintln(a.out, "User Management (type 'help' for commands)")

	a.list.Load(ctx)
	a.renderList()

	for {
		fmt.Fprint(a.out, "users> ")
		if !a.scanner.Scan() {
			return
		}
		parts := strings.Fields(a.scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: (l)ist, add, edit <id>, delete <id>, exit")

		case "l", "list":
			a.list.Load(ctx)
			a.renderList()

		case "add":
			a.runForm(ctx, a.list.RequestCreate())

		case "edit":
			id, ok := a.parseID(args, "edit <id>")
			if !ok {
				continue
			}
			a.runForm(ctx, a.list.RequestEdit(ctx, id))

		case "delete":
			id, ok := a.parseID(args, "delete <id>")
			if !ok {
				continue
			}
			a.deleteUser(ctx, id)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "Invalid id: %s\n", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) deleteUser(ctx context.Context, id int64) {
	a.list.DeleteUser(ctx, id, func() bool {
		ok, err := a.prompter.Confirm(ctx, "Are you sure you want to delete this user?")
		if err != nil {
			a.logger.Warn(ctx, "delete confirmation aborted", "error", err)
			return false
		}
		return ok
	})
	a.renderList()
}
