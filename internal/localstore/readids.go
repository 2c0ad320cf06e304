package localstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/pranikov/sitekit/internal/domain/message"
	"github.com/pranikov/sitekit/internal/repository"
)

// ReadMessageIDs returns the set of messages marked read. Missing or
// undecodable data yields an empty set.
func (s *Store) ReadMessageIDs(ctx context.Context) *message.ReadSet {
	raw, err := s.repo.Get(ctx, KeyMessageReadIDs)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load read message ids", "error", err)
		}
		return message.NewReadSet()
	}
	if raw == "" {
		return message.NewReadSet()
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("ignoring malformed read message ids", "error", err)
		return message.NewReadSet()
	}
	return message.NewReadSet(ids...)
}

// MarkMessageRead adds id to the read set.
func (s *Store) MarkMessageRead(ctx context.Context, id string) error {
	if id == "" {
		return repository.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.ReadMessageIDs(ctx)
	if !set.Add(id) {
		return nil
	}
	return saveJSON(ctx, s, KeyMessageReadIDs, set.IDs())
}
