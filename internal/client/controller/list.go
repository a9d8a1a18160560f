package controller

import (
	"context"
	"time"

	"github.com/udesk/userdesk/internal/client/api"
	"github.com/udesk/userdesk/internal/client/models"
	"github.com/udesk/userdesk/internal/logging"
)

// ListState is the collection view's lifecycle position.
type ListState int

const (
	ListLoading ListState = iota
	ListReady
	ListFailed
)

// View selects which of the two screens is active. Exactly one is at any time.
type View int

const (
	ViewList View = iota
	ViewForm
)

const (
	msgLoadUsersFailed  = "Failed to load users. Please try again."
	msgDeleteUserFailed = "Failed to delete user. Please try again."
	msgUserDeleted      = "User deleted successfully"
)

// ConfirmFunc is the destructive-action guard. It returns true when the user
// approved the action.
type ConfirmFunc func() bool

// List owns the collection view: the fetched records in server order, the
// general error banner, the transient status, and the handoff to and from the
// form controller.
type List struct {
	client api.Client
	logger logging.Logger
	status *StatusBanner

	state      ListState
	users      []models.User
	generalErr string

	view View
	form *Form
}

func NewList(client api.Client, logger logging.Logger, statusTTL time.Duration) *List {
	return &List{
		client: client,
		logger: logger,
		status: NewStatusBanner(statusTTL),
	}
}

// Load fetches all records. On failure the collection empties and the general
// error is set; any previous error clears on re-entry.
func (l *List) Load(ctx context.Context) {
	l.state = ListLoading
	l.generalErr = ""

	users, err := l.client.List(ctx)
	if err != nil {
		l.logger.Error(ctx, "loading users", "error", err)
		l.users = nil
		l.generalErr = msgLoadUsersFailed
		l.state = ListFailed
		return
	}

	l.users = users
	l.state = ListReady
}

// RequestCreate switches to the form view in create mode.
func (l *List) RequestCreate() *Form {
	l.status.Clear()
	l.form = NewForm(l.client, l.logger)
	l.form.BeginCreate()
	l.view = ViewForm
	return l.form
}

// RequestEdit switches to the form view in edit mode, prefilling from the
// backend. The collection itself is untouched.
func (l *List) RequestEdit(ctx context.Context, id int64) *Form {
	l.status.Clear()
	l.form = NewForm(l.client, l.logger)
	l.form.BeginEdit(ctx, id)
	l.view = ViewForm
	return l.form
}

// OnFormSucceeded returns to the list view, shows the form's success message
// as a transient status, and reloads the collection.
func (l *List) OnFormSucceeded(ctx context.Context, message string) {
	l.view = ViewList
	l.form = nil
	l.status.Set(message)
	l.Load(ctx)
}

// OnFormCancelled returns to the list view without touching status or data.
func (l *List) OnFormCancelled() {
	l.view = ViewList
	l.form = nil
}

// DeleteUser removes a record after the guard approves. On failure the
// collection is left as-is (possibly stale) and only the error banner
// changes; on success the status is set and the collection reloads.
func (l *List) DeleteUser(ctx context.Context, id int64, confirm ConfirmFunc) {
	if confirm == nil || !confirm() {
		return
	}

	if err := l.client.Delete(ctx, id); err != nil {
		l.logger.Error(ctx, "deleting user", "id", id, "error", err)
		l.generalErr = msgDeleteUserFailed
		return
	}

	l.status.Set(msgUserDeleted)
	l.Load(ctx)
}

// Close cancels the pending status timer. Call on teardown.
func (l *List) Close() {
	l.status.Stop()
}

func (l *List) State() ListState { return l.state }

// Users returns the records in server-supplied order.
func (l *List) Users() []models.User { return l.users }

func (l *List) GeneralError() string { return l.generalErr }

// Status returns the current transient message, or "".
func (l *List) Status() string { return l.status.Message() }

func (l *List) ActiveView() View { return l.view }

// Form returns the active form controller, or nil in list view.
func (l *List) Form() *Form { return l.form }
