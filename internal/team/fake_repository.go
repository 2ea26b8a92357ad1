package team

// FakeTeamRepository is a stateful in-memory implementation of
// TeamRepository used by service tests (including the battle package,
// which needs team sizes).
type FakeTeamRepository struct {
	slots  []*TeamSlot
	nextID uint
}

func NewFakeTeamRepository() *FakeTeamRepository {
	return &FakeTeamRepository{nextID: 1}
}

func (f *FakeTeamRepository) CreateSlot(slot *TeamSlot) error {
	slot.ID = f.nextID
	f.nextID++
	copied := *slot
	f.slots = append(f.slots, &copied)
	return nil
}

func (f *FakeTeamRepository) GetActiveSlot(trainerID, pokemonID uint) (*TeamSlot, error) {
	for _, s := range f.slots {
		if s.TrainerID == trainerID && s.PokemonID == pokemonID && s.IsActive {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *FakeTeamRepository) GetActiveSlots(trainerID uint) ([]TeamSlot, error) {
	var active []TeamSlot
	for _, s := range f.slots {
		if s.TrainerID == trainerID && s.IsActive {
			active = append(active, *s)
		}
	}
	// ordered by position, mirroring the SQL query
	for i := 1; i < len(active); i++ {
		for j := i; j > 0 && active[j-1].Position > active[j].Position; j-- {
			active[j-1], active[j] = active[j], active[j-1]
		}
	}
	return active, nil
}

func (f *FakeTeamRepository) CountActiveSlots(trainerID uint) (int64, error) {
	var count int64
	for _, s := range f.slots {
		if s.TrainerID == trainerID && s.IsActive {
			count++
		}
	}
	return count, nil
}

func (f *FakeTeamRepository) UpdateSlot(slot *TeamSlot) error {
	for i, s := range f.slots {
		if s.ID == slot.ID {
			copied := *slot
			f.slots[i] = &copied
			return nil
		}
	}
	return nil
}

func (f *FakeTeamRepository) DeactivateSlot(trainerID, pokemonID uint) error {
	for _, s := range f.slots {
		if s.TrainerID == trainerID && s.PokemonID == pokemonID && s.IsActive {
			s.IsActive = false
		}
	}
	return nil
}

func (f *FakeTeamRepository) LockTrainer(trainerID uint) error {
	return nil
}

func (f *FakeTeamRepository) WithTransaction(txFunc func(TeamRepository) error) error {
	return txFunc(f)
}

// SlotHistory returns every slot row including deactivated ones, so tests
// can assert that removal retains history.
func (f *FakeTeamRepository) SlotHistory() []TeamSlot {
	all := make([]TeamSlot, 0, len(f.slots))
	for _, s := range f.slots {
		all = append(all, *s)
	}
	return all
}
