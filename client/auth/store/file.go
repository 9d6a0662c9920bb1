package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"golang.org/x/oauth2"
)

// FileStore persists tokens as a JSON document at any afs URL (local path,
// mem://, cloud storage). The document is loaded once and rewritten on every change.
type FileStore struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	values map[string]string
}

func (f *FileStore) LookupToken(_ context.Context) (*oauth2.Token, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	token := tokenFromValues(f.values[AccessTokenKey], f.values[RefreshTokenKey])
	return token, token != nil, nil
}

func (f *FileStore) AddToken(ctx context.Context, token *oauth2.Token) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = valuesFromToken(token)
	return f.save(ctx)
}

func (f *FileStore) ClearToken(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = map[string]string{}
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return err
	}
	if err = f.fs.Delete(ctx, f.URL); err != nil {
		return fmt.Errorf("failed to delete token file %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) save(ctx context.Context) error {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.URL + ".tmp"
	if err = f.fs.Upload(ctx, tmp, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write token file %v: %w", tmp, err)
	}
	return f.fs.Move(ctx, tmp, f.URL)
}

func (f *FileStore) load(ctx context.Context) error {
	f.values = map[string]string{}
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !exists {
		return err
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, &f.values)
}

// NewFileStore creates a Store persisted at URL; an unreadable document starts an empty session.
func NewFileStore(ctx context.Context, URL string) (*FileStore, error) {
	ret := &FileStore{URL: URL, fs: afs.New()}
	if err := ret.load(ctx); err != nil {
		ret.values = map[string]string{}
		return ret, fmt.Errorf("failed to load token file %v: %w", URL, err)
	}
	return ret, nil
}
