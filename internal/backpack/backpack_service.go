package backpack

import (
	"github.com/pokeroster/pokeroster/internal/domain"
	"github.com/pokeroster/pokeroster/internal/item"
	"github.com/pokeroster/pokeroster/internal/trainer"
)

// BackpackItemResponse is one entry enriched with catalog item details.
type BackpackItemResponse struct {
	ID              uint   `json:"id"`
	TrainerID       uint   `json:"trainer_id"`
	ItemID          uint   `json:"item_id"`
	ItemName        string `json:"item_name"`
	ItemType        string `json:"item_type"`
	ItemDescription string `json:"item_description"`
	ItemPrice       int    `json:"item_price"`
	Quantity        int    `json:"quantity"`
}

// BackpackResponse is the current-backpack view returned by every backpack
// operation. TotalItems is always recomputed from the entries shown.
type BackpackResponse struct {
	TrainerID   uint                   `json:"trainer_id"`
	TrainerName string                 `json:"trainer_name"`
	TotalItems  int                    `json:"total_items"`
	Items       []BackpackItemResponse `json:"items"`
}

// BackpackService enforces inventory-quantity invariants: quantity in
// [1, 999] per (trainer, item), merge on repeat adds, delete on zero.
type BackpackService struct {
	backpackRepo BackpackRepository
	trainerRepo  trainer.TrainerRepository
	itemRepo     item.ItemRepository
}

// NewBackpackService creates a new BackpackService.
func NewBackpackService(backpackRepo BackpackRepository, trainerRepo trainer.TrainerRepository, itemRepo item.ItemRepository) *BackpackService {
	return &BackpackService{
		backpackRepo: backpackRepo,
		trainerRepo:  trainerRepo,
		itemRepo:     itemRepo,
	}
}

// AddItemToBackpack merges the requested quantity into the trainer's entry
// for the item, creating the entry on first add. The quantity check and the
// write run in one transaction under a trainer row lock, so two concurrent
// adds cannot both pass the 999 cap.
func (s *BackpackService) AddItemToBackpack(trainerID, itemID uint, quantity int) (*BackpackResponse, error) {
	t, err := s.trainerRepo.GetTrainerByID(trainerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Trainer", trainerID)
	}

	it, err := s.itemRepo.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, domain.NewNotFound("Item", itemID)
	}

	if quantity <= 0 {
		return nil, domain.NewRuleViolation("Quantity must be positive")
	}

	err = s.backpackRepo.WithTransaction(func(tx BackpackRepository) error {
		if err := tx.LockTrainer(trainerID); err != nil {
			return err
		}

		existing, err := tx.GetEntry(trainerID, itemID)
		if err != nil {
			return err
		}

		current := 0
		if existing != nil {
			current = existing.Quantity
		}
		total := current + quantity
		if total > MaxItemQuantity {
			return domain.NewRuleViolation(
				"Maximum %d items allowed. Current: %d, trying to add: %d, total would be: %d",
				MaxItemQuantity, current, quantity, total)
		}

		if existing != nil {
			existing.Quantity = total
			return tx.UpdateEntry(existing)
		}
		return tx.CreateEntry(&BackpackEntry{
			TrainerID: trainerID,
			ItemID:    itemID,
			Quantity:  quantity,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.GetTrainerBackpack(trainerID)
}

// RemoveItemFromBackpack decrements the entry, deleting it when the result
// reaches zero.
func (s *BackpackService) RemoveItemFromBackpack(trainerID, itemID uint, quantity int) (*BackpackResponse, error) {
	entry, err := s.backpackRepo.GetEntry(trainerID, itemID)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.Quantity == 0 {
		return nil, domain.NewRuleViolation("Trainer %d doesn't have item %d", trainerID, itemID)
	}

	if quantity > entry.Quantity {
		return nil, domain.NewRuleViolation("Cannot remove %d items. Only %d available", quantity, entry.Quantity)
	}

	remaining := entry.Quantity - quantity
	if remaining <= 0 {
		if err := s.backpackRepo.DeleteEntry(trainerID, itemID); err != nil {
			return nil, err
		}
	} else {
		entry.Quantity = remaining
		if err := s.backpackRepo.UpdateEntry(entry); err != nil {
			return nil, err
		}
	}

	return s.GetTrainerBackpack(trainerID)
}

// UpdateItemQuantity sets the entry's quantity directly. Zero deletes the
// entry, mirroring the remove operation's zero-floor rule.
func (s *BackpackService) UpdateItemQuantity(trainerID, itemID uint, newQuantity int) (*BackpackResponse, error) {
	entry, err := s.backpackRepo.GetEntry(trainerID, itemID)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.Quantity == 0 {
		return nil, domain.NewRuleViolation("Trainer %d doesn't have item %d", trainerID, itemID)
	}

	if newQuantity < 0 {
		return nil, domain.NewRuleViolation("Quantity cannot be negative")
	}
	if newQuantity > MaxItemQuantity {
		return nil, domain.NewRuleViolation("Maximum %d items of each type allowed", MaxItemQuantity)
	}

	if newQuantity == 0 {
		if err := s.backpackRepo.DeleteEntry(trainerID, itemID); err != nil {
			return nil, err
		}
	} else {
		entry.Quantity = newQuantity
		if err := s.backpackRepo.UpdateEntry(entry); err != nil {
			return nil, err
		}
	}

	return s.GetTrainerBackpack(trainerID)
}

// GetTrainerBackpack returns all entries joined with catalog details.
// TotalItems is the sum of current quantities, never cached.
func (s *BackpackService) GetTrainerBackpack(trainerID uint) (*BackpackResponse, error) {
	t, err := s.trainerRepo.GetTrainerByID(trainerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Trainer", trainerID)
	}

	entries, err := s.backpackRepo.GetEntries(trainerID)
	if err != nil {
		return nil, err
	}

	items := make([]BackpackItemResponse, 0, len(entries))
	totalItems := 0
	for _, entry := range entries {
		it, err := s.itemRepo.GetItemByID(entry.ItemID)
		if err != nil {
			return nil, err
		}
		if it == nil {
			continue
		}
		items = append(items, BackpackItemResponse{
			ID:              entry.ID,
			TrainerID:       entry.TrainerID,
			ItemID:          entry.ItemID,
			ItemName:        it.Name,
			ItemType:        string(it.Type),
			ItemDescription: it.Description,
			ItemPrice:       it.Price,
			Quantity:        entry.Quantity,
		})
		totalItems += entry.Quantity
	}

	return &BackpackResponse{
		TrainerID:   trainerID,
		TrainerName: t.Name,
		TotalItems:  totalItems,
		Items:       items,
	}, nil
}

// ClearBackpack deletes every entry the trainer holds.
func (s *BackpackService) ClearBackpack(trainerID uint) (*BackpackResponse, error) {
	t, err := s.trainerRepo.GetTrainerByID(trainerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFound("Trainer", trainerID)
	}

	if err := s.backpackRepo.ClearBackpack(trainerID); err != nil {
		return nil, err
	}

	return s.GetTrainerBackpack(trainerID)
}
