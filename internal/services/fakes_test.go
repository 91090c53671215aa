package services

import (
	"context"
	"io"
	"log/slog"

	"svcadmin/internal/api"
	"svcadmin/internal/logging"
	"svcadmin/internal/models"
)

// fakeAPI is an in-memory stand-in for the backend. Preset error fields
// force failures; call counters let tests assert how many network round
// trips an operation performed.
type fakeAPI struct {
	svcs  []models.Svc
	users []models.User

	listSvcCalls  int
	listUserCalls int

	listSvcErr    error
	listUserErr   error
	addErr        error
	updateErr     error
	deleteErr     error
	bulkAddErr    error
	bulkDeleteErr error
	toggleErr     error

	bulkAddRes api.BulkAddResult

	addedInputs     []models.SvcInput
	deletedIDs      []string
	bulkDeletedIDs  [][]string
	bulkDeletedUIDs [][]string
	toggledIDs      []string
}

func (f *fakeAPI) ListSvcs(ctx context.Context) ([]models.Svc, error) {
	f.listSvcCalls++
	if f.listSvcErr != nil {
		return nil, f.listSvcErr
	}
	out := make([]models.Svc, len(f.svcs))
	copy(out, f.svcs)
	return out, nil
}

func (f *fakeAPI) GetSvc(ctx context.Context, id string) (*models.Svc, error) {
	for _, s := range f.svcs {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, &api.Error{Message: "SVC not found"}
}

func (f *fakeAPI) AddSvc(ctx context.Context, in models.SvcInput) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.addedInputs = append(f.addedInputs, in)
	f.svcs = append(f.svcs, models.Svc{
		ID:            "gen-" + in.OfficerSVC,
		OfficerSVC:    in.OfficerSVC,
		OfficerRank:   in.OfficerRank,
		PoliceStation: in.PoliceStation,
		IsActive:      true,
	})
	return nil
}

func (f *fakeAPI) BulkAddSvcs(ctx context.Context, in []models.SvcInput) (api.BulkAddResult, error) {
	if f.bulkAddErr != nil {
		return api.BulkAddResult{}, f.bulkAddErr
	}
	return f.bulkAddRes, nil
}

func (f *fakeAPI) UpdateSvc(ctx context.Context, id string, in models.SvcInput) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.svcs {
		if f.svcs[i].ID == id {
			f.svcs[i].OfficerSVC = in.OfficerSVC
			f.svcs[i].OfficerRank = in.OfficerRank
			f.svcs[i].PoliceStation = in.PoliceStation
		}
	}
	return nil
}

func (f *fakeAPI) DeleteSvc(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeAPI) BulkDeleteSvcs(ctx context.Context, ids []string) (int, error) {
	if f.bulkDeleteErr != nil {
		return 0, f.bulkDeleteErr
	}
	f.bulkDeletedIDs = append(f.bulkDeletedIDs, ids)
	return len(ids), nil
}

func (f *fakeAPI) ToggleSvcStatus(ctx context.Context, id string) (bool, error) {
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	f.toggledIDs = append(f.toggledIDs, id)
	for i := range f.svcs {
		if f.svcs[i].ID == id {
			f.svcs[i].IsActive = !f.svcs[i].IsActive
			return f.svcs[i].IsActive, nil
		}
	}
	return false, &api.Error{Message: "SVC not found"}
}

func (f *fakeAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	f.listUserCalls++
	if f.listUserErr != nil {
		return nil, f.listUserErr
	}
	out := make([]models.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeAPI) BulkDeleteUsers(ctx context.Context, ids []string) (int, error) {
	if f.bulkDeleteErr != nil {
		return 0, f.bulkDeleteErr
	}
	f.bulkDeletedUIDs = append(f.bulkDeletedUIDs, ids)
	return len(ids), nil
}

// recorder captures notifications in order for assertions.
type recorder struct {
	successes []string
	warnings  []string
	errors    []string
}

func (r *recorder) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recorder) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recorder) Error(msg string)   { r.errors = append(r.errors, msg) }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
