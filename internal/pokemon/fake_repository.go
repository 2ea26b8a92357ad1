package pokemon

// FakePokemonRepository is a stateful in-memory implementation of
// PokemonRepository used by service tests across packages.
type FakePokemonRepository struct {
	pokemon map[uint]*Pokemon
	nextID  uint
}

func NewFakePokemonRepository() *FakePokemonRepository {
	return &FakePokemonRepository{pokemon: make(map[uint]*Pokemon), nextID: 1}
}

func (f *FakePokemonRepository) CreatePokemon(p *Pokemon) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == 0 {
		p.ID = f.nextID
		f.nextID++
	} else if p.ID >= f.nextID {
		f.nextID = p.ID + 1
	}
	copied := *p
	f.pokemon[p.ID] = &copied
	return nil
}

func (f *FakePokemonRepository) GetPokemonByID(id uint) (*Pokemon, error) {
	p, ok := f.pokemon[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *FakePokemonRepository) GetAllPokemon(page, limit int) ([]Pokemon, int64, error) {
	all := make([]Pokemon, 0, len(f.pokemon))
	for _, p := range f.pokemon {
		all = append(all, *p)
	}
	return all, int64(len(all)), nil
}

func (f *FakePokemonRepository) UpdatePokemon(p *Pokemon) error {
	if err := p.Validate(); err != nil {
		return err
	}
	copied := *p
	f.pokemon[p.ID] = &copied
	return nil
}

func (f *FakePokemonRepository) DeletePokemon(id uint) error {
	delete(f.pokemon, id)
	return nil
}
