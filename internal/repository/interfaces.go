package repository

import "context"

// SlotRepository manages locally persisted named slots.
// Values are opaque strings; callers choose the encoding.
type SlotRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
