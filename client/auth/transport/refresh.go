package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/viant/storefront/schema"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Refresh exchanges refreshToken for a new access token at the URL set with WithRefreshURL.
// It returns false when the exchange failed, including when no URL is configured;
// the store is then cleared and SessionExpired emitted.
func (r *RoundTripper) Refresh(ctx context.Context, refreshToken string) bool {
	refreshed, _ := r.refresh(ctx, r.refreshURL, refreshToken)
	return refreshed
}

// refresh coalesces concurrent exchanges for the same refresh token. The shared
// exchange outlives a cancelled caller so that one caller leaving does not
// expire the session for everyone else; the cancelled caller gets ctx.Err().
func (r *RoundTripper) refresh(ctx context.Context, URL, refreshToken string) (bool, error) {
	result := r.refreshing.DoChan(refreshToken, func() (interface{}, error) {
		sharedCtx := context.WithoutCancel(ctx)
		err := r.exchange(sharedCtx, URL, refreshToken)
		if err == nil {
			return true, nil
		}
		r.logger.Warn("refresh failed", zap.String("url", URL), zap.Error(err))
		if cErr := r.store.ClearToken(sharedCtx); cErr != nil {
			r.logger.Error("failed to clear tokens", zap.Error(cErr))
		}
		r.notify(sharedCtx, &Event{Type: SessionExpired, Reason: err})
		return false, nil
	})
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-result:
		refreshed, _ := res.Val.(bool)
		return refreshed, nil
	}
}

func (r *RoundTripper) exchange(ctx context.Context, URL, refreshToken string) error {
	if URL == "" {
		return fmt.Errorf("refresh URL was empty, use WithRefreshURL")
	}
	payload, err := json.Marshal(&schema.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set(schema.ContentTypeKey, schema.ContentJSON)
	resp, err := r.transport.RoundTrip(req)
	if err != nil {
		return &schema.NetworkError{URL: URL, Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &schema.NetworkError{URL: URL, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return schema.NewHTTPError(resp.StatusCode, strings.TrimSpace(string(data)))
	}
	var refreshed schema.RefreshResponse
	if err = json.Unmarshal(data, &refreshed); err != nil {
		return schema.NewMalformedError("refresh response", err)
	}
	if refreshed.Access() == "" {
		return schema.NewMalformedError("refresh response without access token", nil)
	}
	next := &oauth2.Token{AccessToken: refreshed.Access(), RefreshToken: refreshToken, TokenType: "Bearer"}
	if rotated := refreshed.Refresh(); rotated != "" {
		next.RefreshToken = rotated
	}
	if err = r.store.AddToken(ctx, next); err != nil {
		return fmt.Errorf("failed to store refreshed token: %w", err)
	}
	return nil
}
