package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"svcadmin/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 2*time.Second)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestListSvcs_DecodesData(t *testing.T) {
	id := uuid.NewString()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/admin/list-svc", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": id, "officerSVC": "SVC001", "isActive": true, "createdAt": "2025-08-01T10:00:00Z"},
			},
		})
	})

	svcs, err := c.ListSvcs(context.Background())
	require.NoError(t, err)
	require.Len(t, svcs, 1)
	require.Equal(t, id, svcs[0].ID)
	require.Equal(t, "SVC001", svcs[0].OfficerSVC)
	require.True(t, svcs[0].IsActive)
}

func TestListSvcs_RejectionCarriesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(t, w, map[string]any{"success": false, "message": "database down"})
	})

	_, err := c.ListSvcs(context.Background())
	require.Error(t, err)

	msg, ok := RejectionMessage(err)
	require.True(t, ok)
	require.Equal(t, "database down", msg)
}

func TestTransportFailureMapsToErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // no listener behind the URL anymore

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.ListSvcs(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)

	_, ok := RejectionMessage(err)
	require.False(t, ok)
}

func TestUndecodableBodyMapsToErrUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := c.ListSvcs(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestAddSvc_PostsInput(t *testing.T) {
	var got models.SvcInput
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/admin/add-svc", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(t, w, map[string]any{"success": true})
	})

	in := models.SvcInput{OfficerSVC: "SVC123", OfficerRank: "Sergeant", PoliceStation: "Kandy Central"}
	require.NoError(t, c.AddSvc(context.Background(), in))
	require.Equal(t, in, got)
}

func TestBulkAddSvcs_WrapsBodyAndReadsResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/bulk-add-svc", r.URL.Path)

		var body struct {
			Svcs []models.SvcInput `json:"svcs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Svcs, 3)

		writeJSON(t, w, map[string]any{
			"success": true,
			"results": map[string]int{"successful": 2, "failed": 1},
		})
	})

	res, err := c.BulkAddSvcs(context.Background(), make([]models.SvcInput, 3))
	require.NoError(t, err)
	require.Equal(t, BulkAddResult{Successful: 2, Failed: 1}, res)
}

func TestUpdateAndDeleteSvc_UseIDPaths(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		writeJSON(t, w, map[string]any{"success": true})
	})

	require.NoError(t, c.UpdateSvc(context.Background(), "abc", models.SvcInput{}))
	require.NoError(t, c.DeleteSvc(context.Background(), "abc"))
	require.Equal(t, []string{"PUT /api/admin/svc/abc", "DELETE /api/admin/svc/abc"}, paths)
}

func TestBulkDeleteSvcs_SendsIDsReturnsCount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/admin/bulk-delete-svc", r.URL.Path)

		var body struct {
			IDs []string `json:"ids"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, []string{"a", "b"}, body.IDs)

		writeJSON(t, w, map[string]any{"success": true, "deletedCount": 2})
	})

	n, err := c.BulkDeleteSvcs(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestToggleSvcStatus_ReturnsNewState(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/admin/svc/xyz/toggle-status", r.URL.Path)
		writeJSON(t, w, map[string]any{"success": true, "data": map[string]bool{"isActive": false}})
	})

	active, err := c.ToggleSvcStatus(context.Background(), "xyz")
	require.NoError(t, err)
	require.False(t, active)
}

func TestListUsers_UsesStatusFlag(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		writeJSON(t, w, map[string]any{
			"status": true,
			"data": []map[string]any{
				{"_id": uuid.NewString(), "fullName": "Nimal Perera", "email": "nimal@police.lk"},
			},
		})
	})

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Nimal Perera", users[0].FullName)
}

func TestListUsers_RejectionUsesErrorField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"status": false, "error": "token expired"})
	})

	_, err := c.ListUsers(context.Background())
	msg, ok := RejectionMessage(err)
	require.True(t, ok)
	require.Equal(t, "token expired", msg)
}

func TestBulkDeleteUsers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/users/bulk-delete", r.URL.Path)
		writeJSON(t, w, map[string]any{"status": true, "deletedCount": 4})
	})

	n, err := c.BulkDeleteUsers(context.Background(), []string{"1", "2", "3", "4"})
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestSetToken_AddsBearerHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(t, w, map[string]any{"success": true, "data": []any{}})
	})

	c.SetToken("session-token")
	_, err := c.ListSvcs(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer session-token", gotAuth)
}

func TestRejectionWithoutMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"success": false})
	})

	err := c.DeleteSvc(context.Background(), "id")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	require.Empty(t, apiErr.Message)
	require.Equal(t, "request rejected", apiErr.Error())
}
