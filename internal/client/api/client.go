// Package api implements the REST repository client the controllers talk to.
// It performs the five user operations against a configured base URL and
// converts error responses into the typed errors in errors.go.
package api

import (
	"context"

	"github.com/udesk/userdesk/internal/client/models"
)

// Client is the repository surface consumed by the controllers. Tests provide
// lightweight fakes; HTTPClient is the real implementation.
type Client interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, draft models.Draft) (*models.User, error)
	Update(ctx context.Context, id int64, draft models.Draft) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}
