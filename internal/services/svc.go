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

// SvcManager owns the SVC page state: the fetched collection, the search
// query, the row selection, and the busy flag guarding overlapping
// mutations.
type SvcManager struct {
	api      api.SvcAPI
	store    *store.Store[models.Svc]
	selected *selection.Set
	notify   Notifier
	log      logging.Logger
	query    string
	busy     bool
}

func NewSvcManager(client api.SvcAPI, notify Notifier, log logging.Logger) *SvcManager {
	return &SvcManager{
		api:      client,
		store:    store.New[models.Svc](),
		selected: selection.New(),
		notify:   notify,
		log:      log.With("page", "svc"),
	}
}

// Busy reports whether a backend call is in flight. Mutation affordances
// are disabled while true.
func (m *SvcManager) Busy() bool { return m.busy }

func (m *SvcManager) begin() { m.busy = true }
func (m *SvcManager) end()   { m.busy = false }

// All returns the last-fetched full collection.
func (m *SvcManager) All() []models.Svc { return m.store.All() }

// Visible returns the collection narrowed by the current search query.
func (m *SvcManager) Visible() []models.Svc {
	return filter.Apply(m.store.All(), m.query, filter.SvcFields)
}

func (m *SvcManager) Query() string { return m.query }

// SetQuery updates the search term. The filtered view is derived on read,
// so no recomputation happens here. Selection is deliberately left alone.
func (m *SvcManager) SetQuery(q string) { m.query = q }

// Selection exposes the row selection for the page view.
func (m *SvcManager) Selection() *selection.Set { return m.selected }

// Load replaces the collection with a fresh full fetch.
func (m *SvcManager) Load(ctx context.Context) error {
	m.begin()
	defer m.end()

	svcs, err := m.api.ListSvcs(ctx)
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to load SVCs"))
		return err
	}
	m.store.ReplaceAll(svcs)
	m.log.Debug(ctx, "collection refreshed", "count", len(svcs))
	return nil
}

// Create validates the input locally, creates the record server-side, and
// refreshes the collection.
func (m *SvcManager) Create(ctx context.Context, in models.SvcInput) error {
	if err := in.Validate(); err != nil {
		m.notify.Error(err.Error())
		return err
	}

	m.begin()
	err := m.api.AddSvc(ctx, in)
	m.end()
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to add SVC"))
		return err
	}

	m.notify.Success("SVC added successfully")
	return m.Load(ctx)
}

// Update replaces the record's editable fields server-side and refreshes.
func (m *SvcManager) Update(ctx context.Context, id string, in models.SvcInput) error {
	if err := in.Validate(); err != nil {
		m.notify.Error(err.Error())
		return err
	}

	m.begin()
	err := m.api.UpdateSvc(ctx, id, in)
	m.end()
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to update SVC"))
		return err
	}

	m.notify.Success("SVC updated successfully")
	return m.Load(ctx)
}

// Delete removes one record by identifier and refreshes.
func (m *SvcManager) Delete(ctx context.Context, id string) error {
	m.begin()
	err := m.api.DeleteSvc(ctx, id)
	m.end()
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to delete SVC"))
		return err
	}

	m.notify.Success("SVC deleted successfully")
	return m.Load(ctx)
}

// BulkDelete removes every selected record. An empty selection is rejected
// locally with a warning before any network call. The selection is cleared
// only after the server confirms the delete.
func (m *SvcManager) BulkDelete(ctx context.Context) error {
	if m.selected.Len() == 0 {
		m.notify.Warning("Please select SVCs to delete")
		return nil
	}

	m.begin()
	count, err := m.api.BulkDeleteSvcs(ctx, m.selected.IDs())
	m.end()
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to delete SVCs"))
		return err
	}

	m.notify.Success(fmt.Sprintf("%d SVCs deleted successfully", count))
	m.selected.Clear()
	return m.Load(ctx)
}

// BulkCreate submits the candidate records in order. The backend accepts and
// rejects candidates independently; any accepted subset still refreshes the
// collection and closes the entry form (the returned bool), while a nonzero
// rejected count raises an additional warning next to the success
// notification.
func (m *SvcManager) BulkCreate(ctx context.Context, inputs []models.SvcInput) (bool, error) {
	for i, in := range inputs {
		if err := in.Validate(); err != nil {
			m.notify.Error(fmt.Sprintf("entry %d: %s", i+1, err.Error()))
			return false, err
		}
	}

	m.begin()
	res, err := m.api.BulkAddSvcs(ctx, inputs)
	m.end()
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to add SVCs"))
		return false, err
	}

	m.notify.Success(fmt.Sprintf("%d SVCs added successfully", res.Successful))
	if res.Failed > 0 {
		m.notify.Warning(fmt.Sprintf("%d SVCs failed to add", res.Failed))
	}
	return true, m.Load(ctx)
}

// ToggleStatus flips the record's active flag server-side. The notification
// reflects the state the server reports back, then the collection is
// refreshed.
func (m *SvcManager) ToggleStatus(ctx context.Context, id string) error {
	m.begin()
	active, err := m.api.ToggleSvcStatus(ctx, id)
	m.end()
	if err != nil {
		m.notify.Error(failMessage(err, "Failed to toggle status"))
		return err
	}

	state := "deactivated"
	if active {
		state = "activated"
	}
	m.notify.Success(fmt.Sprintf("SVC %s successfully", state))
	return m.Load(ctx)
}
