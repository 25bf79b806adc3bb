// Package remote implements the HTTP client for the remote persistence backend.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// snapshotResponse is the wire shape of the remote snapshot endpoint.
type snapshotResponse struct {
	Transactions          []json.RawMessage `json:"transactions"`
	Categories            []json.RawMessage `json:"categories"`
	Goals                 []json.RawMessage `json:"goals"`
	RecurringTransactions []json.RawMessage `json:"recurring_transactions"`
	Assets                []json.RawMessage `json:"assets"`
	Profile               json.RawMessage   `json:"profile"`
}

// HTTPGateway talks to the remote backend's per-entity CRUD endpoints. All
// calls are scoped to the authenticated user via the bearer token; callers
// bound each call with a context timeout.
type HTTPGateway struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

// NewHTTPGateway creates a gateway for the given backend base URL.
func NewHTTPGateway(baseURL, accessToken string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      &http.Client{Timeout: timeout},
	}
}

// Pull fetches the remote collections and profile for the current user.
func (g *HTTPGateway) Pull(ctx context.Context) (*adapter.RemoteSnapshot, error) {
	body, err := g.do(ctx, http.MethodGet, g.baseURL+"/api/v1/snapshot", nil)
	if err != nil {
		return nil, err
	}

	var response snapshotResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeRemotePullFailed,
			"malformed remote snapshot",
			err,
		)
	}

	return &adapter.RemoteSnapshot{
		Collections: map[entity.Kind][]json.RawMessage{
			entity.KindTransaction: response.Transactions,
			entity.KindCategory:    response.Categories,
			entity.KindGoal:        response.Goals,
			entity.KindRecurring:   response.RecurringTransactions,
			entity.KindAsset:       response.Assets,
		},
		Profile: response.Profile,
	}, nil
}

// Upsert creates or replaces the record embedded in payload by its id.
func (g *HTTPGateway) Upsert(ctx context.Context, kind entity.Kind, payload json.RawMessage) error {
	_, err := g.do(ctx, http.MethodPut, g.baseURL+"/api/v1/"+string(kind), payload)
	return err
}

// Delete removes the record with the given id.
func (g *HTTPGateway) Delete(ctx context.Context, kind entity.Kind, id string) error {
	_, err := g.do(ctx, http.MethodDelete, g.baseURL+"/api/v1/"+string(kind)+"/"+id, nil)
	return err
}

func (g *HTTPGateway) do(ctx context.Context, method, url string, payload json.RawMessage) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	request.Header.Set("Authorization", "Bearer "+g.accessToken)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := g.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer func() { _ = response.Body.Close() }()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeRemoteBadStatus,
			fmt.Sprintf("remote returned status %d", response.StatusCode),
			domainerror.ErrRemoteApplyFailed,
		)
	}
	return responseBody, nil
}

var _ adapter.RemoteGateway = (*HTTPGateway)(nil)
