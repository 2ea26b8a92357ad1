package item

// FakeItemRepository is a stateful in-memory implementation of
// ItemRepository used by service tests across packages.
type FakeItemRepository struct {
	items  map[uint]*Item
	nextID uint
}

func NewFakeItemRepository() *FakeItemRepository {
	return &FakeItemRepository{items: make(map[uint]*Item), nextID: 1}
}

func (f *FakeItemRepository) CreateItem(it *Item) error {
	if it.ID == 0 {
		it.ID = f.nextID
		f.nextID++
	} else if it.ID >= f.nextID {
		f.nextID = it.ID + 1
	}
	copied := *it
	f.items[it.ID] = &copied
	return nil
}

func (f *FakeItemRepository) GetItemByID(id uint) (*Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	copied := *it
	return &copied, nil
}

func (f *FakeItemRepository) GetAllItems(page, limit int) ([]Item, int64, error) {
	all := make([]Item, 0, len(f.items))
	for _, it := range f.items {
		all = append(all, *it)
	}
	return all, int64(len(all)), nil
}

func (f *FakeItemRepository) UpdateItem(it *Item) error {
	copied := *it
	f.items[it.ID] = &copied
	return nil
}

func (f *FakeItemRepository) DeleteItem(id uint) error {
	delete(f.items, id)
	return nil
}
