package api

import (
	"context"

	"svcadmin/internal/models"
)

// BulkAddResult is the partial-success accounting of a bulk create: the
// backend processes candidates independently and reports both tallies.
type BulkAddResult struct {
	Successful int
	Failed     int
}

// SvcAPI covers the service-credential endpoints.
type SvcAPI interface {
	ListSvcs(ctx context.Context) ([]models.Svc, error)
	GetSvc(ctx context.Context, id string) (*models.Svc, error)
	AddSvc(ctx context.Context, in models.SvcInput) error
	BulkAddSvcs(ctx context.Context, in []models.SvcInput) (BulkAddResult, error)
	UpdateSvc(ctx context.Context, id string, in models.SvcInput) error
	DeleteSvc(ctx context.Context, id string) error
	BulkDeleteSvcs(ctx context.Context, ids []string) (int, error)
	ToggleSvcStatus(ctx context.Context, id string) (bool, error)
}

// UserAPI covers the personnel-account endpoints.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	BulkDeleteUsers(ctx context.Context, ids []string) (int, error)
}

// Client is the full backend surface the console depends on.
type Client interface {
	SvcAPI
	UserAPI
}
