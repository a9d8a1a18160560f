package cli

import (
	"context"
	"fmt"

	"github.com/udesk/userdesk/internal/client/controller"
	"github.com/udesk/userdesk/internal/client/models"
)

// formFields drives the prompt order. Labels match the original form, with
// '*' marking required fields.
var formFields = []struct {
	name  string
	label string
}{
	{models.FieldFirstName, "First Name *"},
	{models.FieldLastName, "Last Name *"},
	{models.FieldEmail, "Email *"},
	{models.FieldPhone, "Phone"},
}

// runForm walks the user through the form: prompt every field (prefilled
// with the current draft), submit, and repeat until the submission succeeds
// or the user aborts a prompt. Field and general errors are printed between
// rounds; the current values carry over as the next round's defaults.
func (a *App) runForm(ctx context.Context, form *controller.Form) {
	fmt.Fprintln(a.out, form.Title())

	if msg := form.GeneralError(); msg != "" {
		fmt.Fprintln(a.out, "!", msg)
	}

	for {
		for _, field := range formFields {
			value, err := a.prompter.Input(ctx, field.label, form.Draft().Get(field.name))
			if err != nil {
				a.logger.Debug(ctx, "form aborted", "field", field.name, "error", err)
				form.Cancel()
				a.list.OnFormCancelled()
				a.renderList()
				return
			}
			form.UpdateField(field.name, value)
		}

		form.Submit(ctx)

		if form.State() == controller.FormSucceeded {
			a.list.OnFormSucceeded(ctx, form.SuccessMessage())
			a.renderList()
			return
		}

		a.renderFormErrors(form)
	}
}

func (a *App) renderFormErrors(form *controller.Form) {
	if msg := form.GeneralError(); msg != "" {
		fmt.Fprintln(a.out, "!", msg)
	}
	for _, field := range formFields {
		if msg := form.FieldError(field.name); msg != "" {
			fmt.Fprintf(a.out, "  %s: %s\n", field.name, msg)
		}
	}
}
