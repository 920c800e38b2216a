// Package cinema implements the client for the remote catalog service.
package cinema

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/filmotek/filmotek/internal/config"
	"github.com/filmotek/filmotek/internal/schema"
)

// Client handles communication with the catalog service.
type Client struct {
	endpoint      string
	authorization string
	httpClient    *http.Client
	logger        *logrus.Logger
}

// NewClient creates a new catalog service client.
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		endpoint:      cfg.Endpoint,
		authorization: cfg.Authorization,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		logger:        logger,
	}
}

// doRequest performs an authenticated HTTP request against the service.
// Any non-2xx status is returned as an error.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	fullURL := c.endpoint + path
	c.logger.WithFields(logrus.Fields{
		"method": method,
		"url":    fullURL,
	}).Debug("Making catalog service request")

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.authorization)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListFilms fetches the full catalog.
func (c *Client) ListFilms(ctx context.Context) ([]schema.WireFilm, error) {
	var films []schema.WireFilm
	if err := c.doRequest(ctx, http.MethodGet, "/movies", nil, &films); err != nil {
		return nil, fmt.Errorf("failed to list films: %w", err)
	}
	return films, nil
}

// UpdateFilm pushes one film and returns the authoritative record.
func (c *Client) UpdateFilm(ctx context.Context, film schema.WireFilm) (schema.WireFilm, error) {
	var updated schema.WireFilm
	if err := c.doRequest(ctx, http.MethodPut, "/movies/"+film.ID, film, &updated); err != nil {
		return schema.WireFilm{}, fmt.Errorf("failed to update film %q: %w", film.ID, err)
	}
	return updated, nil
}

// ListComments fetches the comments of one film.
func (c *Client) ListComments(ctx context.Context, filmID string) ([]schema.WireComment, error) {
	var comments []schema.WireComment
	if err := c.doRequest(ctx, http.MethodGet, "/comments/"+filmID, nil, &comments); err != nil {
		return nil, fmt.Errorf("failed to list comments for film %q: %w", filmID, err)
	}
	return comments, nil
}

// AddComment creates a comment on a film. The response carries the
// updated film together with its complete comment collection.
func (c *Client) AddComment(ctx context.Context, filmID string, draft schema.WireCommentDraft) (schema.AddCommentResponse, error) {
	var response schema.AddCommentResponse
	if err := c.doRequest(ctx, http.MethodPost, "/comments/"+filmID, draft, &response); err != nil {
		return schema.AddCommentResponse{}, fmt.Errorf("failed to add comment to film %q: %w", filmID, err)
	}
	return response, nil
}

// DeleteComment removes a comment by id.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/comments/"+commentID, nil, nil); err != nil {
		return fmt.Errorf("failed to delete comment %q: %w", commentID, err)
	}
	return nil
}

// BulkSync pushes a batch of films accumulated while offline and
// returns the per-item outcome.
func (c *Client) BulkSync(ctx context.Context, films []schema.WireFilm) (schema.SyncResponse, error) {
	var response schema.SyncResponse
	if err := c.doRequest(ctx, http.MethodPost, "/movies/sync", films, &response); err != nil {
		return schema.SyncResponse{}, fmt.Errorf("failed to sync films: %w", err)
	}
	return response, nil
}
