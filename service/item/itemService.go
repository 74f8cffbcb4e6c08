package itemsvc

import (
	"context"
	"database/sql"
	"errors"

	"lendify/model"
)

var (
	ErrBadInput = errors.New("bad input")
	ErrNotFound = errors.New("item not found")
)

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	Update(ctx context.Context, it *model.Item) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]model.Item, error)
	Detail(ctx context.Context, id int64) (*model.Item, error)
}

type Service interface {
	Create(ctx context.Context, name, category string, stock int64, location string) (*model.Item, error)
	Update(ctx context.Context, id int64, name, category string, stock int64, location string) (*model.Item, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Item, error)
	Detail(ctx context.Context, id int64) (*model.Item, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// Create provisions a new item. Status is derived from the initial
// stock, the same projection the ledger maintains afterwards.
func (s *service) Create(ctx context.Context, name, category string, stock int64, location string) (*model.Item, error) {
	if name == "" || category == "" || stock < 0 {
		return nil, ErrBadInput
	}
	it := &model.Item{
		Name:     name,
		Category: category,
		Stock:    stock,
		Location: location,
		Status:   model.StatusFor(stock),
	}
	if err := s.r.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, id int64, name, category string, stock int64, location string) (*model.Item, error) {
	if id <= 0 || name == "" || category == "" || stock < 0 {
		return nil, ErrBadInput
	}
	it := &model.Item{
		ID:       id,
		Name:     name,
		Category: category,
		Stock:    stock,
		Location: location,
		Status:   model.StatusFor(stock),
	}
	ok, err := s.r.Update(ctx, it)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return it, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]model.Item, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.r.Detail(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}
