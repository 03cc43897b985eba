package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slangstash/slang-service/internal/cache"
	"github.com/slangstash/slang-service/internal/mocks"
)

func TestInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("single key", func(t *testing.T) {
		store := mocks.NewMockCache(ctrl)
		store.EXPECT().Delete(ctx, "rizz").Return(int64(1), nil)

		deleted, err := cache.Invalidate(ctx, store, "rizz")
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("empty key evicts everything", func(t *testing.T) {
		store := mocks.NewMockCache(ctrl)
		store.EXPECT().Keys(ctx, "*").Return([]string{"rizz", "delulu"}, nil)
		store.EXPECT().Delete(ctx, "rizz", "delulu").Return(int64(2), nil)

		deleted, err := cache.Invalidate(ctx, store, "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
	})

	t.Run("empty cache is a no-op", func(t *testing.T) {
		store := mocks.NewMockCache(ctrl)
		store.EXPECT().Keys(ctx, "*").Return(nil, nil)

		deleted, err := cache.Invalidate(ctx, store, "")
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("backend error is surfaced", func(t *testing.T) {
		store := mocks.NewMockCache(ctrl)
		backendErr := errors.New("connection refused")
		store.EXPECT().Keys(ctx, "*").Return(nil, backendErr)

		_, err := cache.Invalidate(ctx, store, "")
		assert.ErrorIs(t, err, backendErr)
	})
}
