package services

import (
	"context"
	"fmt"

	"svcadmin/internal/api"
	"svcadmin/internal/filter"
	"svcadmin/internal/logging"
	"svcadmin/internal/models"
	"svcadmin/internal/selection"
	"svcadmin/internal/store"
)

// UserManager owns the user page state. Users are read-only except for
// deletion; the backend exposes no per-record delete endpoint, so single
// deletes go through the bulk endpoint with one identifier.
type UserManager struct {
	api      api.UserAPI
	store    *store.Store[models.User]
	selected *selection.Set
	notify   Notifier
	log      logging.Logger
	query    string
	busy     bool
}

func NewUserManager(client api.UserAPI, notify Notifier, log logging.Logger) *UserManager {
	return &UserManager{
		api:      client,
		store:    store.New[models.User](),
		selected: selection.New(),
		notify:   notify,
		log:      log.With("page", "user"),
	}
}

func (m *UserManager) Busy() bool { return m.busy }

func (m *UserManager) begin() { m.busy = true }
func (m *UserManager) end()   { m.busy = false }

func (m *UserManager) All() []models.User { return m.store.All() }

func (m *UserManager) Visible() []models.User {
	return filter.Apply(m.store.All(), m.query, filter.UserFields)
}

func (m *UserManager) Query() string     { return m.query }
func (m *UserManager) SetQuery(q string) { m.query = q }

func (m *UserManager) Selection() *selection.Set { return m.selected }

// Load replaces the collection with a fresh full fetch.
func (m *UserManager) Load(ctx context.Context) error {
	m.begin()
	defer m.end()

	users, err := m.api.ListUsers(ctx)
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to load users"))
		return err
	}
	m.store.ReplaceAll(users)
	m.log.Debug(ctx, "collection refreshed", "count", len(users))
	return nil
}

// Delete removes one user and refreshes.
func (m *UserManager) Delete(ctx context.Context, id string) error {
	m.begin()
	_, err := m.api.BulkDeleteUsers(ctx, []string{id})
	m.end()
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to delete user"))
		return err
	}

	m.notify.Success("User deleted successfully")
	return m.Load(ctx)
}

// BulkDelete removes every selected user. An empty selection is rejected
// locally with a warning and no network call; the selection is cleared only
// on success.
func (m *UserManager) BulkDelete(ctx context.Context) error {
	if m.selected.Len() == 0 {
		m.notify.Warning("Please select users to delete")
		return nil
	}

	m.begin()
	count, err := m.api.BulkDeleteUsers(ctx, m.selected.IDs())
	m.end()
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to delete users"))
		return err
	}

	m.notify.Success(fmt.Sprintf("%d users deleted successfully", count))
	m.selected.Clear()
	return m.Load(ctx)
}
