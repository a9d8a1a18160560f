package controller

import (
	"context"
	"io"
	"log/slog"

	"github.com/udesk/userdesk/internal/client/models"
	"github.com/udesk/userdesk/internal/logging"
)

// fakeClient is a scriptable api.Client for controller tests.
type fakeClient struct {
	listOut   []models.User
	listErr   error
	listCalls int

	getID  int64
	getOut *models.User
	getErr error

	createIn  models.Draft
	createOut *models.User
	createErr error

	updateID  int64
	updateIn  models.Draft
	updateOut *models.User
	updateErr error

	deleteID    int64
	deleteErr   error
	deleteCalls int
}

func (f *fakeClient) List(ctx context.Context) ([]models.User, error) {
	f.listCalls++
	return f.listOut, f.listErr
}

func (f *fakeClient) Get(ctx context.Context, id int64) (*models.User, error) {
	f.getID = id
	return f.getOut, f.getErr
}

func (f *fakeClient) Create(ctx context.Context, draft models.Draft) (*models.User, error) {
	f.createIn = draft
	return f.createOut, f.createErr
}

func (f *fakeClient) Update(ctx context.Context, id int64, draft models.Draft) (*models.User, error) {
	f.updateID = id
	f.updateIn = draft
	return f.updateOut, f.updateErr
}

func (f *fakeClient) Delete(ctx context.Context, id int64) error {
	f.deleteID = id
	f.deleteCalls++
	return f.deleteErr
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
