package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe_menu_service/internal/domain/menu"
)

func TestBadgerSentStore(t *testing.T) {
	store, err := NewBadgerSentStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	sent, err := store.WasSent(menu.SlotLunchMeal, "2024-01-15")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, store.MarkSent(menu.SlotLunchMeal, "2024-01-15"))

	sent, err = store.WasSent(menu.SlotLunchMeal, "2024-01-15")
	require.NoError(t, err)
	assert.True(t, sent)

	sent, err = store.WasSent(menu.SlotLunchMeal, "2024-01-16")
	require.NoError(t, err)
	assert.False(t, sent, "marks are scoped to the calendar date")

	sent, err = store.WasSent(menu.SlotMorningTea, "2024-01-15")
	require.NoError(t, err)
	assert.False(t, sent, "marks are scoped to the slot key")
}

func TestMemorySentStore(t *testing.T) {
	store := NewMemorySentStore()

	sent, err := store.WasSent(menu.SlotMorningMeal, "2024-01-15")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, store.MarkSent(menu.SlotMorningMeal, "2024-01-15"))

	sent, err = store.WasSent(menu.SlotMorningMeal, "2024-01-15")
	require.NoError(t, err)
	assert.True(t, sent)
}
