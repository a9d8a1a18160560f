// Package controller owns the transient client state: the form lifecycle
// (draft, field errors, submission outcome), the collection view, and the
// self-clearing status banner. All failures from the repository client are
// converted to state here; nothing propagates to the rendering layer.
package controller

import (
	"context"
	"errors"

	"github.com/udesk/userdesk/internal/client/api"
	"github.com/udesk/userdesk/internal/client/models"
	"github.com/udesk/userdesk/internal/client/validation"
	"github.com/udesk/userdesk/internal/logging"
)

// FormState is the form controller's lifecycle position.
type FormState int

const (
	// FormEditing accepts field updates and a submit attempt.
	FormEditing FormState = iota
	// FormLoading is fetching the record to prefill (edit mode only).
	FormLoading
	// FormSubmitting has an in-flight create/update call.
	FormSubmitting
	// FormSucceeded is terminal; the owner reads SuccessMessage and discards
	// the controller.
	FormSucceeded
)

// General messages shown when a failure has no better explanation.
const (
	msgLoadUserFailed = "Failed to load user. Please try again."
	msgUnexpected     = "An unexpected error occurred. Please try again."
	msgUserCreated    = "User created successfully"
	msgUserUpdated    = "User updated successfully"
)

// Form drives one create/edit interaction: prefill, per-field edits, client
// validation, submission, and reconciliation of server-side errors.
type Form struct {
	client api.Client
	logger logging.Logger

	editID int64 // 0 in create mode
	state  FormState

	draft      models.Draft
	fieldErrs  models.FieldErrors
	generalErr string
	successMsg string
}

func NewForm(client api.Client, logger logging.Logger) *Form {
	return &Form{
		client:    client,
		logger:    logger,
		fieldErrs: models.FieldErrors{},
	}
}

// BeginCreate initializes an empty draft in create mode.
func (f *Form) BeginCreate() {
	f.editID = 0
	f.draft = models.Draft{}
	f.fieldErrs = models.FieldErrors{}
	f.generalErr = ""
	f.state = FormEditing
}

// BeginEdit fetches the record and prefills the draft. If the fetch fails the
// form stays usable with an empty draft and a general error.
func (f *Form) BeginEdit(ctx context.Context, id int64) {
	f.editID = id
	f.draft = models.Draft{}
	f.fieldErrs = models.FieldErrors{}
	f.generalErr = ""
	f.state = FormLoading

	user, err := f.client.Get(ctx, id)
	if err != nil {
		f.logger.Error(ctx, "loading user for edit", "id", id, "error", err)
		f.generalErr = msgLoadUserFailed
		f.state = FormEditing
		return
	}

	f.draft = models.DraftFromUser(*user)
	f.state = FormEditing
}

// UpdateField writes one draft field and drops that field's error entry.
// The error clears because the user is retyping; no re-validation happens
// until the next submit.
func (f *Form) UpdateField(name, value string) {
	f.draft.Set(name, value)
	delete(f.fieldErrs, name)
}

// Submit validates the draft, then creates or updates depending on mode.
// The outcome lands in state: FormSucceeded with a message, or FormEditing
// with field errors or a general error. Submit never returns an error.
func (f *Form) Submit(ctx context.Context) {
	f.generalErr = ""

	// The validator's verdict replaces the previous set even when it is
	// empty, so field errors from an earlier rejected submit do not linger.
	f.fieldErrs = validation.Validate(f.draft)
	if len(f.fieldErrs) > 0 {
		return
	}

	f.state = FormSubmitting

	var err error
	if f.IsEdit() {
		_, err = f.client.Update(ctx, f.editID, f.draft)
	} else {
		_, err = f.client.Create(ctx, f.draft)
	}

	if err == nil {
		if f.IsEdit() {
			f.successMsg = msgUserUpdated
		} else {
			f.successMsg = msgUserCreated
		}
		f.state = FormSucceeded
		return
	}

	f.logger.Error(ctx, "saving user", "edit", f.IsEdit(), "error", err)
	f.state = FormEditing

	var validationErr *api.ValidationError
	var apiErr *api.APIError
	switch {
	case errors.As(err, &validationErr):
		// Server's verdict replaces whatever was there.
		f.fieldErrs = models.FieldErrors(validationErr.Fields)
	case errors.As(err, &apiErr):
		f.generalErr = apiErr.Message
	default:
		f.generalErr = msgUnexpected
	}
}

// Cancel discards the draft. No network call is made.
func (f *Form) Cancel() {
	f.draft = models.Draft{}
	f.fieldErrs = models.FieldErrors{}
	f.generalErr = ""
}

// IsEdit reports whether the form targets an existing record.
func (f *Form) IsEdit() bool { return f.editID != 0 }

func (f *Form) State() FormState { return f.state }

func (f *Form) Draft() models.Draft { return f.draft }

// FieldError returns the message for one field, or "".
func (f *Form) FieldError(name string) string { return f.fieldErrs[name] }

// FieldErrors returns a copy of the current field-keyed errors.
func (f *Form) FieldErrors() models.FieldErrors {
	out := make(models.FieldErrors, len(f.fieldErrs))
	for k, v := range f.fieldErrs {
		out[k] = v
	}
	return out
}

func (f *Form) GeneralError() string { return f.generalErr }

func (f *Form) SuccessMessage() string { return f.successMsg }

// Title names the interaction for the rendering layer.
func (f *Form) Title() string {
	if f.IsEdit() {
		return "Edit User"
	}
	return "Add New User"
}
