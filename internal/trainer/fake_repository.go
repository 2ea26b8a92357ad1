package trainer

// FakeTrainerRepository is a stateful in-memory implementation of
// TrainerRepository used by service tests across packages.
type FakeTrainerRepository struct {
	trainers map[uint]*Trainer
	nextID   uint
}

func NewFakeTrainerRepository() *FakeTrainerRepository {
	return &FakeTrainerRepository{trainers: make(map[uint]*Trainer), nextID: 1}
}

func (f *FakeTrainerRepository) CreateTrainer(t *Trainer) error {
	if t.ID == 0 {
		t.ID = f.nextID
		f.nextID++
	} else if t.ID >= f.nextID {
		f.nextID = t.ID + 1
	}
	copied := *t
	f.trainers[t.ID] = &copied
	return nil
}

func (f *FakeTrainerRepository) GetTrainerByID(id uint) (*Trainer, error) {
	t, ok := f.trainers[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *FakeTrainerRepository) GetAllTrainers(page, limit int) ([]Trainer, int64, error) {
	all := make([]Trainer, 0, len(f.trainers))
	for _, t := range f.trainers {
		all = append(all, *t)
	}
	return all, int64(len(all)), nil
}

func (f *FakeTrainerRepository) UpdateTrainer(t *Trainer) error {
	copied := *t
	f.trainers[t.ID] = &copied
	return nil
}

func (f *FakeTrainerRepository) DeleteTrainer(id uint) error {
	delete(f.trainers, id)
	return nil
}
