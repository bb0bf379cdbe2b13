package submissions

import (
	"context"
	"crypto/rand"
	"io"
	"sync"
)

// Repository defines the interface for submission storage
type Repository interface {
	Add(ctx context.Context, s NewSubmission) (*Submission, error)
	List(ctx context.Context) ([]Submission, error)
	Count(ctx context.Context) (int, error)
}

const (
	idLength   = 9
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// Random bytes at or above idByteLimit are discarded so every symbol of
	// idAlphabet is equally likely.
	idByteLimit = 256 - 256%len(idAlphabet)
)

// InMemoryStore keeps the most recent submissions in process memory.
// Entries are held oldest-first internally so insertion is an append and
// eviction is a reslice from the front; List reverses into newest-first.
type InMemoryStore struct {
	mu    sync.RWMutex
	items []Submission
	ids   map[string]struct{}
	limit int
	newID func() string
}

// StoreOption customises an InMemoryStore.
type StoreOption func(*InMemoryStore)

// WithIDGenerator replaces the random token generator.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *InMemoryStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewInMemoryStore creates an empty store capped at MaxSubmissions.
func NewInMemoryStore(opts ...StoreOption) *InMemoryStore {
	s := &InMemoryStore{
		ids:   make(map[string]struct{}, MaxSubmissions),
		limit: MaxSubmissions,
		newID: randomID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add assigns an ID, records the submission as the newest entry and evicts
// the oldest entries beyond the cap. It never fails.
func (s *InMemoryStore) Add(_ context.Context, in NewSubmission) (*Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for _, taken := s.ids[id]; taken; _, taken = s.ids[id] {
		id = s.newID()
	}

	sub := Submission{
		ID:        id,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Timestamp: in.Timestamp,
		UserAgent: in.UserAgent,
	}
	s.items = append(s.items, sub)
	s.ids[id] = struct{}{}

	if overflow := len(s.items) - s.limit; overflow > 0 {
		for _, evicted := range s.items[:overflow] {
			delete(s.ids, evicted.ID)
		}
		clear(s.items[:overflow])
		s.items = s.items[overflow:]
	}

	out := sub
	return &out, nil
}

// List returns a newest-first copy of the retained submissions.
func (s *InMemoryStore) List(_ context.Context) ([]Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Submission, len(s.items))
	for i, sub := range s.items {
		out[len(s.items)-1-i] = sub
	}
	return out, nil
}

// Count returns the number of retained submissions.
func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

var _ Repository = (*InMemoryStore)(nil)

// randomID returns a short lowercase alphanumeric token.
func randomID() string {
	id, err := randomIDFrom(rand.Reader)
	if err != nil {
		panic("submissions: crypto/rand unavailable: " + err.Error())
	}
	return id
}

func randomIDFrom(r io.Reader) (string, error) {
	out := make([]byte, 0, idLength)
	var buf [idLength * 2]byte
	for len(out) < idLength {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= idByteLimit {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == idLength {
				break
			}
		}
	}
	return string(out), nil
}
