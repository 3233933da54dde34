package session

import "context"

// MemStore is an in-memory Store for tests.
type MemStore struct {
	token string
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Get(ctx context.Context) (string, error) { return s.token, nil }

func (s *MemStore) Set(ctx context.Context, token string) error {
	s.token = token
	return nil
}

func (s *MemStore) Clear(ctx context.Context) error {
	s.token = ""
	return nil
}
