package cache

import (
	"context"
)

// Invalidate evicts a single cache entry, or every key when key is empty.
// It returns the number of deleted entries.
func Invalidate(ctx context.Context, store Cache, key string) (int64, error) {
	if key != "" {
		return store.Delete(ctx, key)
	}

	keys, err := store.Keys(ctx, "*")
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	return store.Delete(ctx, keys...)
}
