package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"svcadmin/internal/models"
)

const defaultTimeout = 15 * time.Second

// HTTPClient implements Client over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewHTTPClient builds a client for the backend at baseURL. A zero timeout
// falls back to the default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken attaches a session token sent as a bearer credential on every
// subsequent request.
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// svcEnvelope is the response wrapper of the SVC endpoints.
type svcEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`

	DeletedCount int `json:"deletedCount"`
	Results      *struct {
		Successful int `json:"successful"`
		Failed     int `json:"failed"`
	} `json:"results"`
}

// userEnvelope is the response wrapper of the user endpoints, which signal
// success through "status" and report failures in either "message" or
// "error".
type userEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Err     string          `json:"error"`
	Data    json.RawMessage `json:"data"`

	DeletedCount int `json:"deletedCount"`
}

func (e *userEnvelope) reason() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err
}

func (c *HTTPClient) ListSvcs(ctx context.Context) ([]models.Svc, error) {
	env, err := c.doSvc(ctx, http.MethodGet, "/api/admin/list-svc", nil)
	if err != nil {
		return nil, err
	}
	var svcs []models.Svc
	if err := json.Unmarshal(env.Data, &svcs); err != nil {
		return nil, fmt.Errorf("decode svc list: %w", err)
	}
	return svcs, nil
}

func (c *HTTPClient) GetSvc(ctx context.Context, id string) (*models.Svc, error) {
	env, err := c.doSvc(ctx, http.MethodGet, "/api/admin/svc/"+id, nil)
	if err != nil {
		return nil, err
	}
	var svc models.Svc
	if err := json.Unmarshal(env.Data, &svc); err != nil {
		return nil, fmt.Errorf("decode svc: %w", err)
	}
	return &svc, nil
}

func (c *HTTPClient) AddSvc(ctx context.Context, in models.SvcInput) error {
	_, err := c.doSvc(ctx, http.MethodPost, "/api/admin/add-svc", in)
	return err
}

func (c *HTTPClient) BulkAddSvcs(ctx context.Context, in []models.SvcInput) (BulkAddResult, error) {
	body := struct {
		Svcs []models.SvcInput `json:"svcs"`
	}{Svcs: in}

	env, err := c.doSvc(ctx, http.MethodPost, "/api/admin/bulk-add-svc", body)
	if err != nil {
		return BulkAddResult{}, err
	}
	if env.Results == nil {
		return BulkAddResult{}, fmt.Errorf("bulk add response missing results")
	}
	return BulkAddResult{Successful: env.Results.Successful, Failed: env.Results.Failed}, nil
}

func (c *HTTPClient) UpdateSvc(ctx context.Context, id string, in models.SvcInput) error {
	_, err := c.doSvc(ctx, http.MethodPut, "/api/admin/svc/"+id, in)
	return err
}

func (c *HTTPClient) DeleteSvc(ctx context.Context, id string) error {
	_, err := c.doSvc(ctx, http.MethodDelete, "/api/admin/svc/"+id, nil)
	return err
}

func (c *HTTPClient) BulkDeleteSvcs(ctx context.Context, ids []string) (int, error) {
	body := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}

	env, err := c.doSvc(ctx, http.MethodDelete, "/api/admin/bulk-delete-svc", body)
	if err != nil {
		return 0, err
	}
	return env.DeletedCount, nil
}

func (c *HTTPClient) ToggleSvcStatus(ctx context.Context, id string) (bool, error) {
	env, err := c.doSvc(ctx, http.MethodPatch, "/api/admin/svc/"+id+"/toggle-status", nil)
	if err != nil {
		return false, err
	}
	var data struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return false, fmt.Errorf("decode toggle response: %w", err)
	}
	return data.IsActive, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	env, err := c.doUser(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := json.Unmarshal(env.Data, &users); err != nil {
		return nil, fmt.Errorf("decode user list: %w", err)
	}
	return users, nil
}

func (c *HTTPClient) BulkDeleteUsers(ctx context.Context, ids []string) (int, error) {
	body := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}

	env, err := c.doUser(ctx, http.MethodDelete, "/users/bulk-delete", body)
	if err != nil {
		return 0, err
	}
	return env.DeletedCount, nil
}

func (c *HTTPClient) doSvc(ctx context.Context, method, path string, body any) (*svcEnvelope, error) {
	var env svcEnvelope
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &Error{Message: env.Message}
	}
	return &env, nil
}

func (c *HTTPClient) doUser(ctx context.Context, method, path string, body any) (*userEnvelope, error) {
	var env userEnvelope
	if err := c.do(ctx, method, path, body, &env); err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, &Error{Message: env.reason()}
	}
	return &env, nil
}

// do sends one request and decodes the response body into out. The envelope
// is decoded even on non-2xx statuses: the backend reports rejections
// through the envelope flag, not the status code. Only an unreachable
// server or an undecodable body count as transport failure.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	return nil
}
