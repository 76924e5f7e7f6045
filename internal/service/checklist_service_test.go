package service

import (
	"context"
	"testing"

	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistItemsScopedToOwner(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	stranger := uuid.New()

	checklist := &entity.Checklist{Id: uuid.New(), UserId: owner, Name: "Step 1: Registration"}
	store.checklists = append(store.checklists, checklist)
	store.items = append(store.items,
		&entity.ChecklistItem{Id: uuid.New(), ChecklistId: checklist.Id, Text: "Reserve a name", OrderIndex: 0},
		&entity.ChecklistItem{Id: uuid.New(), ChecklistId: checklist.Id, Text: "File paperwork", OrderIndex: 1},
	)

	svc := NewChecklistService(store)

	items, err := svc.Items(context.Background(), owner, checklist.Id)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// A different user sees nothing, not an error.
	items, err = svc.Items(context.Background(), stranger, checklist.Id)
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestChecklistUpdateProgress(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	checklist := &entity.Checklist{Id: uuid.New(), UserId: owner, Name: "Step 1: Registration"}
	store.checklists = append(store.checklists, checklist)

	svc := NewChecklistService(store)

	res, err := svc.UpdateProgress(context.Background(), owner, &dto.UpdateChecklistProgressRequest{
		Id:       checklist.Id,
		Progress: 60,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 60, res.Progress)
	assert.NotNil(t, res.UpdatedAt)
	assert.Equal(t, 60, store.checklists[0].Progress)
}

func TestChecklistUpdateItemVerifiesOwnershipViaParent(t *testing.T) {
	store := newFakeStore()
	owner := uuid.New()
	checklist := &entity.Checklist{Id: uuid.New(), UserId: owner, Name: "Step 1: Registration"}
	item := &entity.ChecklistItem{Id: uuid.New(), ChecklistId: checklist.Id, Text: "Reserve a name"}
	store.checklists = append(store.checklists, checklist)
	store.items = append(store.items, item)

	svc := NewChecklistService(store)

	// Stranger cannot toggle the item.
	res, err := svc.UpdateItem(context.Background(), uuid.New(), &dto.UpdateChecklistItemRequest{
		Id:        item.Id,
		Completed: true,
	})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.False(t, store.items[0].Completed)

	// Owner can.
	res, err = svc.UpdateItem(context.Background(), owner, &dto.UpdateChecklistItemRequest{
		Id:        item.Id,
		Completed: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Completed)
	assert.True(t, store.items[0].Completed)
}
