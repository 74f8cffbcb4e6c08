// service/item/item_service_test.go
package itemsvc_test

import (
	"context"
	"errors"
	"testing"

	"lendify/model"
	itemsvc "lendify/service/item"
)

type repoMock struct {
	createFn func(ctx context.Context, it *model.Item) error
	updateFn func(ctx context.Context, it *model.Item) (bool, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
	listFn   func(ctx context.Context) ([]model.Item, error)
	detailFn func(ctx context.Context, id int64) (*model.Item, error)
}

func (m *repoMock) Create(ctx context.Context, it *model.Item) error { return m.createFn(ctx, it) }
func (m *repoMock) Update(ctx context.Context, it *model.Item) (bool, error) {
	return m.updateFn(ctx, it)
}
func (m *repoMock) Delete(ctx context.Context, id int64) (bool, error) { return m.deleteFn(ctx, id) }
func (m *repoMock) List(ctx context.Context) ([]model.Item, error)     { return m.listFn(ctx) }
func (m *repoMock) Detail(ctx context.Context, id int64) (*model.Item, error) {
	return m.detailFn(ctx, id)
}

func TestCreate_Validation(t *testing.T) {
	s := itemsvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), "", "Electronics", 5, "Shelf A"); err == nil {
		t.Fatal("expected error for empty name")
	}
	if _, err := s.Create(context.Background(), "Projector", "", 5, "Shelf A"); err == nil {
		t.Fatal("expected error for empty category")
	}
	if _, err := s.Create(context.Background(), "Projector", "Electronics", -1, "Shelf A"); err == nil {
		t.Fatal("expected error for negative stock")
	}
}

func TestCreate_DerivesStatus(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, it *model.Item) error {
			it.ID = 42
			return nil
		},
	}
	s := itemsvc.New(m)

	it, err := s.Create(context.Background(), "Projector", "Electronics", 5, "Shelf A")
	if err != nil || it.ID != 42 {
		t.Fatalf("got id=%v err=%v; want 42 nil", it, err)
	}
	if it.Status != model.ItemAvailable {
		t.Fatalf("status = %q, want Available", it.Status)
	}

	it2, err := s.Create(context.Background(), "Tripod", "Photo", 0, "Shelf B")
	if err != nil {
		t.Fatal(err)
	}
	if it2.Status != model.ItemOutOfStock {
		t.Fatalf("status = %q, want Out of Stock", it2.Status)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	m := &repoMock{
		updateFn: func(ctx context.Context, it *model.Item) (bool, error) { return false, nil },
	}
	s := itemsvc.New(m)
	if _, err := s.Update(context.Background(), 9, "Projector", "Electronics", 1, ""); !errors.Is(err, itemsvc.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		listFn:   func(ctx context.Context) ([]model.Item, error) { return nil, nil },
		detailFn: func(ctx context.Context, id int64) (*model.Item, error) { return &model.Item{ID: id}, nil },
	}
	s := itemsvc.New(m)

	if err := s.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if it, err := s.Detail(context.Background(), 99); err != nil || it.ID != 99 {
		t.Fatalf("Detail got %v %v", it, err)
	}
}
