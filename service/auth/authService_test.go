// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"database/sql"
	"testing"

	"lendify/model"
	userrepo "lendify/repository/user"
	"lendify/util/hash"

	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	byStudentIDFn func(ctx context.Context, studentID string) (*model.User, error)
	createFn      func(ctx context.Context, u *model.User) error
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) ByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	if m.byStudentIDFn == nil {
		return nil, sql.ErrNoRows
	}
	return m.byStudentIDFn(ctx, studentID)
}

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockRepo) Update(ctx context.Context, u *model.User) (bool, error) { return false, nil }
func (m *mockRepo) List(ctx context.Context) ([]model.User, error)          { return nil, nil }
func (m *mockRepo) ListDeleted(ctx context.Context) ([]model.User, error)   { return nil, nil }
func (m *mockRepo) SoftDelete(ctx context.Context, id int64) (bool, error)  { return false, nil }
func (m *mockRepo) Recover(ctx context.Context, id int64) (bool, error)     { return false, nil }

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret")

	req := model.RegisterReq{
		Name:      "Ada Lovelace",
		StudentID: "S-2023-0042",
		Email:     "ada@example.edu",
		Password:  "supersecret",
	}

	u, tok, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.EqualValues(t, 42, u.ID)
	require.Equal(t, model.RoleStudent, u.Role)
	require.True(t, hash.Check(u.PasswordHash, "supersecret"))
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	hashed := mustHash(t, "supersecret")
	m := &mockRepo{
		byStudentIDFn: func(ctx context.Context, studentID string) (*model.User, error) {
			require.Equal(t, "S-2023-0042", studentID)
			return &model.User{
				ID:           42,
				StudentID:    studentID,
				PasswordHash: hashed,
				Role:         model.RoleStudent,
			}, nil
		},
	}
	svc := New(m, "test-secret")

	u, tok, err := svc.Login(ctx, model.LoginReq{StudentID: "S-2023-0042", Password: "supersecret"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.EqualValues(t, 42, u.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed := mustHash(t, "supersecret")
	m := &mockRepo{
		byStudentIDFn: func(ctx context.Context, studentID string) (*model.User, error) {
			return &model.User{ID: 1, PasswordHash: hashed}, nil
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{StudentID: "S-1", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_UnknownOrDeletedUser(t *testing.T) {
	m := &mockRepo{
		byStudentIDFn: func(ctx context.Context, studentID string) (*model.User, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := New(m, "test-secret")

	_, _, err := svc.Login(context.Background(), model.LoginReq{StudentID: "gone", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}
