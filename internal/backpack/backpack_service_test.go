package backpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeroster/pokeroster/internal/domain"
	"github.com/pokeroster/pokeroster/internal/item"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

type backpackFixture struct {
	backpackRepo *FakeBackpackRepository
	trainerRepo  *trainer.FakeTrainerRepository
	itemRepo     *item.FakeItemRepository
	service      *BackpackService
}

func newBackpackFixture(t *testing.T) *backpackFixture {
	t.Helper()
	f := &backpackFixture{
		backpackRepo: NewFakeBackpackRepository(),
		trainerRepo:  trainer.NewFakeTrainerRepository(),
		itemRepo:     item.NewFakeItemRepository(),
	}
	f.service = NewBackpackService(f.backpackRepo, f.trainerRepo, f.itemRepo)
	return f
}

func (f *backpackFixture) addTrainer(t *testing.T, name string) uint {
	t.Helper()
	tr := &trainer.Trainer{Name: name, Gender: trainer.GenderFemale, Region: trainer.RegionJohto}
	require.NoError(t, f.trainerRepo.CreateTrainer(tr))
	return tr.ID
}

func (f *backpackFixture) addItem(t *testing.T, name string, price int) uint {
	t.Helper()
	it := &item.Item{Name: name, Type: item.TypePotion, Description: "test item", Price: price}
	require.NoError(t, f.itemRepo.CreateItem(it))
	return it.ID
}

func TestAddItemToBackpack(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	view, err := f.service.AddItemToBackpack(trainerID, itemID, 5)
	require.NoError(t, err)

	assert.Equal(t, "Misty", view.TrainerName)
	assert.Equal(t, 5, view.TotalItems)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Potion", view.Items[0].ItemName)
	assert.Equal(t, "potion", view.Items[0].ItemType)
	assert.Equal(t, 300, view.Items[0].ItemPrice)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestAddItemMergesIntoExistingEntry(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 3)
	require.NoError(t, err)
	view, err := f.service.AddItemToBackpack(trainerID, itemID, 4)
	require.NoError(t, err)

	// one merged entry, not two rows
	require.Len(t, view.Items, 1)
	assert.Equal(t, 7, view.Items[0].Quantity)
	assert.Equal(t, 7, view.TotalItems)
}

func TestAddItemQuantityCap(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 700)
	require.NoError(t, err)

	_, err = f.service.AddItemToBackpack(trainerID, itemID, 400)
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "Maximum 999 items allowed")

	// no mutation on failure
	view, err := f.service.GetTrainerBackpack(trainerID)
	require.NoError(t, err)
	assert.Equal(t, 700, view.Items[0].Quantity)
}

func TestAddItemExactCap(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 700)
	require.NoError(t, err)
	view, err := f.service.AddItemToBackpack(trainerID, itemID, 299)
	require.NoError(t, err)
	assert.Equal(t, MaxItemQuantity, view.Items[0].Quantity)
}

func TestAddItemNonPositiveQuantity(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	for _, q := range []int{0, -5} {
		_, err := f.service.AddItemToBackpack(trainerID, itemID, q)
		require.Error(t, err)
		assert.True(t, domain.IsRuleViolation(err))
		assert.Contains(t, err.Error(), "Quantity must be positive")
	}
}

func TestAddItemTrainerNotFound(t *testing.T) {
	f := newBackpackFixture(t)
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(42, itemID, 1)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestAddItemItemNotFound(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")

	_, err := f.service.AddItemToBackpack(trainerID, 42, 1)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestRemoveItemPartial(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 10)
	require.NoError(t, err)

	view, err := f.service.RemoveItemFromBackpack(trainerID, itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, view.Items[0].Quantity)
	assert.Equal(t, 6, view.TotalItems)
}

func TestRemoveItemAllDeletesEntry(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 5)
	require.NoError(t, err)

	view, err := f.service.RemoveItemFromBackpack(trainerID, itemID, 5)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)

	entry, err := f.backpackRepo.GetEntry(trainerID, itemID)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestRemoveItemTooMany(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 3)
	require.NoError(t, err)

	_, err = f.service.RemoveItemFromBackpack(trainerID, itemID, 4)
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "Only 3 available")

	view, err := f.service.GetTrainerBackpack(trainerID)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestRemoveItemNotHeld(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.RemoveItemFromBackpack(trainerID, itemID, 1)
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "doesn't have item")
}

func TestUpdateItemQuantity(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 5)
	require.NoError(t, err)

	view, err := f.service.UpdateItemQuantity(trainerID, itemID, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, view.Items[0].Quantity)
}

func TestUpdateItemQuantityToZeroDeletes(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 5)
	require.NoError(t, err)

	view, err := f.service.UpdateItemQuantity(trainerID, itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	entry, err := f.backpackRepo.GetEntry(trainerID, itemID)
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestUpdateItemQuantityOutOfRange(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.AddItemToBackpack(trainerID, itemID, 5)
	require.NoError(t, err)

	_, err = f.service.UpdateItemQuantity(trainerID, itemID, -1)
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "cannot be negative")

	_, err = f.service.UpdateItemQuantity(trainerID, itemID, 1000)
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
	assert.Contains(t, err.Error(), "Maximum 999")

	view, err := f.service.GetTrainerBackpack(trainerID)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestUpdateItemQuantityEntryMissing(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	itemID := f.addItem(t, "Potion", 300)

	_, err := f.service.UpdateItemQuantity(trainerID, itemID, 5)
	require.Error(t, err)
	assert.True(t, domain.IsRuleViolation(err))
}

func TestGetTrainerBackpackTotalRecomputed(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	potion := f.addItem(t, "Potion", 300)
	ball := f.addItem(t, "Poke Ball", 200)

	_, err := f.service.AddItemToBackpack(trainerID, potion, 5)
	require.NoError(t, err)
	_, err = f.service.AddItemToBackpack(trainerID, ball, 12)
	require.NoError(t, err)

	view, err := f.service.GetTrainerBackpack(trainerID)
	require.NoError(t, err)
	assert.Equal(t, 17, view.TotalItems)
	assert.Len(t, view.Items, 2)
}

func TestClearBackpack(t *testing.T) {
	f := newBackpackFixture(t)
	trainerID := f.addTrainer(t, "Misty")
	potion := f.addItem(t, "Potion", 300)
	ball := f.addItem(t, "Poke Ball", 200)

	_, err := f.service.AddItemToBackpack(trainerID, potion, 5)
	require.NoError(t, err)
	_, err = f.service.AddItemToBackpack(trainerID, ball, 12)
	require.NoError(t, err)

	view, err := f.service.ClearBackpack(trainerID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
}

func TestGetTrainerBackpackTrainerNotFound(t *testing.T) {
	f := newBackpackFixture(t)

	_, err := f.service.GetTrainerBackpack(42)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}
