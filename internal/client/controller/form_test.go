package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udesk/userdesk/internal/client/api"
	"github.com/udesk/userdesk/internal/client/models"
)

func TestFormBeginCreate(t *testing.T) {
	form := NewForm(&fakeClient{}, testLogger())
	form.BeginCreate()

	assert.Equal(t, FormEditing, form.State())
	assert.False(t, form.IsEdit())
	assert.Equal(t, models.Draft{}, form.Draft())
	assert.Empty(t, form.FieldErrors())
	assert.Empty(t, form.GeneralError())
}

func TestFormBeginEditPrefillsDraft(t *testing.T) {
	client := &fakeClient{
		getOut: &models.User{
			ID:        42,
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "555-0100",
		},
	}
	form := NewForm(client, testLogger())
	form.BeginEdit(context.Background(), 42)

	assert.Equal(t, int64(42), client.getID)
	assert.Equal(t, FormEditing, form.State())
	assert.True(t, form.IsEdit())
	assert.Equal(t, models.Draft{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Phone:     "555-0100",
	}, form.Draft())
}

func TestFormBeginEditLoadFailure(t *testing.T) {
	client := &fakeClient{getErr: errors.New("boom")}
	form := NewForm(client, testLogger())
	form.BeginEdit(context.Background(), 42)

	// The form stays usable with an empty draft and a general error.
	assert.Equal(t, FormEditing, form.State())
	assert.Equal(t, "Failed to load user. Please try again.", form.GeneralError())
	assert.Equal(t, models.Draft{}, form.Draft())
}

func TestFormUpdateFieldClearsItsError(t *testing.T) {
	form := NewForm(&fakeClient{}, testLogger())
	form.BeginCreate()
	form.Submit(context.Background()) // empty draft: every required field flagged

	require.NotEmpty(t, form.FieldError(models.FieldEmail))
	require.NotEmpty(t, form.FieldError(models.FieldFirstName))

	form.UpdateField(models.FieldEmail, "j")

	// Only the edited field's error clears; no eager re-validation.
	assert.Empty(t, form.FieldError(models.FieldEmail))
	assert.NotEmpty(t, form.FieldError(models.FieldFirstName))
	assert.Equal(t, "j", form.Draft().Email)
}

func TestFormSubmitInvalidDraftSkipsNetwork(t *testing.T) {
	client := &fakeClient{}
	form := NewForm(client, testLogger())
	form.BeginCreate()
	form.UpdateField(models.FieldFirstName, "Jane")
	form.UpdateField(models.FieldLastName, "Doe")
	form.UpdateField(models.FieldEmail, "bad-email")

	form.Submit(context.Background())

	assert.Equal(t, FormEditing, form.State())
	assert.Equal(t, "Email must be a valid email address", form.FieldError(models.FieldEmail))
	assert.Zero(t, client.createIn, "no create call expected")
}

func TestFormSubmitCreateSuccess(t *testing.T) {
	client := &fakeClient{createOut: &models.User{ID: 7}}
	form := NewForm(client, testLogger())
	form.BeginCreate()
	form.UpdateField(models.FieldFirstName, "Jane")
	form.UpdateField(models.FieldLastName, "Doe")
	form.UpdateField(models.FieldEmail, "jane@example.com")

	form.Submit(context.Background())

	assert.Equal(t, FormSucceeded, form.State())
	assert.Equal(t, "User created successfully", form.SuccessMessage())
	assert.Equal(t, "jane@example.com", client.createIn.Email)
}

func TestFormSubmitUpdateSuccess(t *testing.T) {
	client := &fakeClient{
		getOut:    &models.User{ID: 42, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"},
		updateOut: &models.User{ID: 42},
	}
	form := NewForm(client, testLogger())
	form.BeginEdit(context.Background(), 42)
	form.UpdateField(models.FieldPhone, "555-0100")

	form.Submit(context.Background())

	assert.Equal(t, FormSucceeded, form.State())
	assert.Equal(t, "User updated successfully", form.SuccessMessage())
	assert.Equal(t, int64(42), client.updateID)
	assert.Equal(t, "555-0100", client.updateIn.Phone)
}

func TestFormSubmitServerValidationReplacesFieldErrors(t *testing.T) {
	client := &fakeClient{
		createErr: &api.ValidationError{Fields: map[string]string{"email": "must be unique"}},
	}
	form := NewForm(client, testLogger())
	form.BeginCreate()
	form.UpdateField(models.FieldFirstName, "Jane")
	form.UpdateField(models.FieldLastName, "Doe")
	form.UpdateField(models.FieldEmail, "jane@example.com")

	form.Submit(context.Background())

	assert.Equal(t, FormEditing, form.State())
	assert.Equal(t, models.FieldErrors{"email": "must be unique"}, form.FieldErrors())
	assert.Empty(t, form.GeneralError())
}

func TestFormResubmitClearsStaleServerFieldErrors(t *testing.T) {
	client := &fakeClient{
		createErr: &api.ValidationError{Fields: map[string]string{"phone": "Phone is invalid"}},
	}
	form := NewForm(client, testLogger())
	form.BeginCreate()
	form.UpdateField(models.FieldFirstName, "Jane")
	form.UpdateField(models.FieldLastName, "Doe")
	form.UpdateField(models.FieldEmail, "jane@example.com")

	form.Submit(context.Background())
	require.Equal(t, models.FieldErrors{"phone": "Phone is invalid"}, form.FieldErrors())

	// Resubmit the unchanged draft; this time the server rejects on a
	// business rule. The server's old field verdict must not survive.
	client.createErr = &api.APIError{Status: http.StatusConflict, Message: "A user with this email address already exists"}
	form.Submit(context.Background())

	assert.Equal(t, FormEditing, form.State())
	assert.Empty(t, form.FieldErrors())
	assert.Equal(t, "A user with this email address already exists", form.GeneralError())
}

func TestFormSubmitBusinessRuleError(t *testing.T) {
	client := &fakeClient{
		createErr: &api.APIError{Status: http.StatusConflict, Message: "A user with this email address already exists"},
	}
	form := NewForm(client, testLogger())
	form.BeginCreate()
	form.UpdateField(models.FieldFirstName, "Jane")
	form.UpdateField(models.FieldLastName, "Doe")
	form.UpdateField(models.FieldEmail, "jane@example.com")

	form.Submit(context.Background())

	assert.Equal(t, FormEditing, form.State())
	assert.Equal(t, "A user with this email address already exists", form.GeneralError())
	assert.Empty(t, form.FieldErrors())
}

func TestFormSubmitUnknownErrorShape(t *testing.T) {
	client := &fakeClient{createErr: errors.New("connection reset")}
	form := NewForm(client, testLogger())
	form.BeginCreate()
	form.UpdateField(models.FieldFirstName, "Jane")
	form.UpdateField(models.FieldLastName, "Doe")
	form.UpdateField(models.FieldEmail, "jane@example.com")

	form.Submit(context.Background())

	assert.Equal(t, FormEditing, form.State())
	assert.Equal(t, "An unexpected error occurred. Please try again.", form.GeneralError())
}

func TestFormSubmitClearsPreviousGeneralError(t *testing.T) {
	client := &fakeClient{createOut: &models.User{ID: 1}}
	form := NewForm(client, testLogger())
	form.BeginCreate()
	form.generalErr = "A user with this email address already exists"
	form.UpdateField(models.FieldFirstName, "Jane")
	form.UpdateField(models.FieldLastName, "Doe")
	form.UpdateField(models.FieldEmail, "jane2@example.com")

	form.Submit(context.Background())

	assert.Equal(t, FormSucceeded, form.State())
	assert.Empty(t, form.GeneralError())
}

func TestFormTitle(t *testing.T) {
	client := &fakeClient{getOut: &models.User{ID: 42, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}}

	form := NewForm(client, testLogger())
	form.BeginCreate()
	assert.Equal(t, "Add New User", form.Title())

	form = NewForm(client, testLogger())
	form.BeginEdit(context.Background(), 42)
	assert.Equal(t, "Edit User", form.Title())
}

func TestFormCancelDiscardsDraft(t *testing.T) {
	form := NewForm(&fakeClient{}, testLogger())
	form.BeginCreate()
	form.UpdateField(models.FieldFirstName, "Jane")

	form.Cancel()

	assert.Equal(t, models.Draft{}, form.Draft())
	assert.Empty(t, form.FieldErrors())
}
