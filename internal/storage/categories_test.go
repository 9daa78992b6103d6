package storage

import (
	"context"
	"testing"

	"github.com/hollisb/penny/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	groceries, err := store.CreateCategory(ctx, "Groceries", nil)
	require.NoError(t, err)
	assert.NotZero(t, groceries.ID)

	// Child under a valid parent.
	produce, err := store.CreateCategory(ctx, "Produce", &groceries.ID)
	require.NoError(t, err)
	require.NotNil(t, produce.ParentID)
	assert.Equal(t, groceries.ID, *produce.ParentID)

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.CreateCategory(ctx, "Groceries", nil)
	require.NoError(t, err)

	_, err = store.CreateCategory(ctx, "Groceries", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestCreateCategoryUnknownParent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	missing := int64(999)
	_, err := store.CreateCategory(ctx, "Orphan", &missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrForeignKeyViolation)
}
