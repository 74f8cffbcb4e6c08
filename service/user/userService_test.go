// service/user/user_service_test.go
package usersvc_test

import (
	"context"
	"errors"
	"testing"

	"lendify/model"
	usersvc "lendify/service/user"
	"lendify/util/hash"
)

type repoMock struct {
	createFn      func(ctx context.Context, u *model.User) error
	updateFn      func(ctx context.Context, u *model.User) (bool, error)
	listFn        func(ctx context.Context) ([]model.User, error)
	listDeletedFn func(ctx context.Context) ([]model.User, error)
	softDeleteFn  func(ctx context.Context, id int64) (bool, error)
	recoverFn     func(ctx context.Context, id int64) (bool, error)
}

func (m *repoMock) Create(ctx context.Context, u *model.User) error { return m.createFn(ctx, u) }
func (m *repoMock) ByStudentID(ctx context.Context, sid string) (*model.User, error) {
	return nil, nil
}
func (m *repoMock) Update(ctx context.Context, u *model.User) (bool, error) {
	return m.updateFn(ctx, u)
}
func (m *repoMock) List(ctx context.Context) ([]model.User, error) { return m.listFn(ctx) }
func (m *repoMock) ListDeleted(ctx context.Context) ([]model.User, error) {
	return m.listDeletedFn(ctx)
}
func (m *repoMock) SoftDelete(ctx context.Context, id int64) (bool, error) {
	return m.softDeleteFn(ctx, id)
}
func (m *repoMock) Recover(ctx context.Context, id int64) (bool, error) { return m.recoverFn(ctx, id) }

func TestCreate_DefaultsRoleAndPassword(t *testing.T) {
	var created *model.User
	m := &repoMock{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 7
			created = u
			return nil
		},
	}
	s := usersvc.New(m)

	u, err := s.Create(context.Background(), "Ada", "S-1", "ada@example.edu", "")
	if err != nil || u.ID != 7 {
		t.Fatalf("got %v %v", u, err)
	}
	if created.Role != model.RoleStudent {
		t.Fatalf("role = %q, want student", created.Role)
	}
	if !hash.Check(created.PasswordHash, "password123") {
		t.Fatal("default password not set")
	}
}

func TestCreate_Validation(t *testing.T) {
	s := usersvc.New(&repoMock{})
	if _, err := s.Create(context.Background(), "", "S-1", "a@b.c", "student"); !errors.Is(err, usersvc.ErrBadInput) {
		t.Fatalf("err = %v, want ErrBadInput", err)
	}
}

func TestDeleteRecover_NotFound(t *testing.T) {
	m := &repoMock{
		softDeleteFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
		recoverFn:    func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	s := usersvc.New(m)

	if err := s.Delete(context.Background(), 9); !errors.Is(err, usersvc.ErrNotFound) {
		t.Fatalf("delete err = %v, want ErrNotFound", err)
	}
	if err := s.Recover(context.Background(), 9); !errors.Is(err, usersvc.ErrNotFound) {
		t.Fatalf("recover err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRecover_Success(t *testing.T) {
	m := &repoMock{
		softDeleteFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		recoverFn:    func(ctx context.Context, id int64) (bool, error) { return true, nil },
	}
	s := usersvc.New(m)

	if err := s.Delete(context.Background(), 9); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Recover(context.Background(), 9); err != nil {
		t.Fatalf("recover: %v", err)
	}
}
