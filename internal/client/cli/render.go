package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/udesk/userdesk/internal/client/controller"
)

// renderList prints the collection view: transient status, error banner,
// then the table or the empty-state hint.
func (a *App) renderList() {
	if msg := a.list.Status(); msg != "" {
		fmt.Fprintln(a.out, "✓", msg)
	}
	if msg := a.list.GeneralError(); msg != "" {
		fmt.Fprintln(a.out, "!", msg)
	}

	if a.list.State() == controller.ListFailed {
		return
	}

	users := a.list.Users()
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found. Add the first user to get started.")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tPHONE")
	for _, u := range users {
		phone := u.Phone
		if phone == "" {
			phone = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.FirstName, u.LastName, u.Email, phone)
	}
	_ = w.Flush()
}
