package backpack

// FakeBackpackRepository is a stateful in-memory implementation of
// BackpackRepository used by service tests.
type FakeBackpackRepository struct {
	entries []*BackpackEntry
	nextID  uint
}

func NewFakeBackpackRepository() *FakeBackpackRepository {
	return &FakeBackpackRepository{nextID: 1}
}

func (f *FakeBackpackRepository) CreateEntry(entry *BackpackEntry) error {
	entry.ID = f.nextID
	f.nextID++
	copied := *entry
	f.entries = append(f.entries, &copied)
	return nil
}

func (f *FakeBackpackRepository) GetEntry(trainerID, itemID uint) (*BackpackEntry, error) {
	for _, e := range f.entries {
		if e.TrainerID == trainerID && e.ItemID == itemID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeBackpackRepository) GetEntries(trainerID uint) ([]BackpackEntry, error) {
	var result []BackpackEntry
	for _, e := range f.entries {
		if e.TrainerID == trainerID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (f *FakeBackpackRepository) UpdateEntry(entry *BackpackEntry) error {
	for i, e := range f.entries {
		if e.ID == entry.ID {
			copied := *entry
			f.entries[i] = &copied
			return nil
		}
	}
	return nil
}

func (f *FakeBackpackRepository) DeleteEntry(trainerID, itemID uint) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if !(e.TrainerID == trainerID && e.ItemID == itemID) {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *FakeBackpackRepository) ClearBackpack(trainerID uint) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.TrainerID != trainerID {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *FakeBackpackRepository) LockTrainer(trainerID uint) error {
	return nil
}

func (f *FakeBackpackRepository) WithTransaction(txFunc func(BackpackRepository) error) error {
	return txFunc(f)
}
