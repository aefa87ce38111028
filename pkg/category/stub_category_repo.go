package category

import "context"

type StubCategoryRepo struct {
	data []Category
}

func NewStubCategoryRepo(categories ...Category) *StubCategoryRepo {
	return &StubCategoryRepo{data: categories}
}

func (s *StubCategoryRepo) GetAll(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *StubCategoryRepo) Get(ctx context.Context, id int) (Category, error) {
	for _, c := range s.data {
		if c.Id == id {
			return c, nil
		}
	}
	return Category{}, ErrCategoryNotFound
}
