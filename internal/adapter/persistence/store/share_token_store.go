package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"threadquote/internal/domain/entities"
	"threadquote/internal/usecase/interfaces"
)

const tokenBytes = 32 // 256 bits of entropy; the link is the only access control

// ShareTokenStore is the process-wide in-memory token registry. Entries are
// never expired or revoked, not even when the underlying quote is deleted;
// an orphaned token keeps serving its snapshot.
//
// All operations take the store lock, so concurrent requests on the same
// token cannot interleave between read and write. A duplicate "Approve"
// submit simply overwrites the response with the same value.
type ShareTokenStore struct {
	mu      sync.RWMutex
	entries map[string]*entities.ShareTokenEntry
}

var _ interfaces.IShareTokenStore = (*ShareTokenStore)(nil)

func NewShareTokenStore() *ShareTokenStore {
	return &ShareTokenStore{entries: make(map[string]*entities.ShareTokenEntry)}
}

func (s *ShareTokenStore) Mint(_ context.Context, quote entities.Quote) (entities.ShareTokenEntry, error) {
	token, err := newToken()
	if err != nil {
		return entities.ShareTokenEntry{}, err
	}

	entry := &entities.ShareTokenEntry{
		Token:         token,
		QuoteSnapshot: quote.Clone(),
		Response:      nil,
		CreatedAt:     time.Now().UTC(),
	}

	s.mu.Lock()
	s.entries[token] = entry
	s.mu.Unlock()

	return snapshotEntry(entry), nil
}

func (s *ShareTokenStore) Get(_ context.Context, token string) (entities.ShareTokenEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[token]
	if !ok {
		return entities.ShareTokenEntry{}, nil
	}
	return snapshotEntry(entry), nil
}

// SetResponse records the latest customer decision on the entry. Last write
// wins: a token may be answered more than once and the entry keeps only the
// newest response, while the quote's append-only history (maintained by the
// workflow) keeps them all.
func (s *ShareTokenStore) SetResponse(_ context.Context, token string, status entities.ResponseStatus, notes string) (entities.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return entities.Response{}, nil
	}

	resp := entities.Response{
		Status: status,
		Notes:  notes,
		Date:   time.Now().UTC(),
	}
	entry.Response = &resp

	return resp, nil
}

// snapshotEntry copies the entry so callers cannot mutate store state.
func snapshotEntry(entry *entities.ShareTokenEntry) entities.ShareTokenEntry {
	out := entities.ShareTokenEntry{
		Token:         entry.Token,
		QuoteSnapshot: entry.QuoteSnapshot.Clone(),
		CreatedAt:     entry.CreatedAt,
	}
	if entry.Response != nil {
		resp := *entry.Response
		out.Response = &resp
	}
	return out
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
