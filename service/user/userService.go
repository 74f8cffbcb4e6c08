package usersvc

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"lendify/model"
	userrepo "lendify/repository/user"
	"lendify/util/hash"
)

// Admin-created accounts start with this password until the student
// changes it at first login.
const defaultPassword = "password123"

var (
	ErrBadInput = errors.New("bad input")
	ErrNotFound = errors.New("active user not found")
	ErrTaken    = errors.New("student id or email already exists")
)

type Service interface {
	Create(ctx context.Context, name, studentID, email string, role model.Role) (*model.User, error)
	Update(ctx context.Context, id int64, name, studentID, email string, role model.Role) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListDeleted(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id int64) error
	Recover(ctx context.Context, id int64) error
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur: ur} }

func (s *service) Create(ctx context.Context, name, studentID, email string, role model.Role) (*model.User, error) {
	if name == "" || studentID == "" || email == "" {
		return nil, ErrBadInput
	}
	if role == "" {
		role = model.RoleStudent
	}
	hashed, err := hash.HashPassword(defaultPassword)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Name:         name,
		StudentID:    studentID,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}
	if err := s.ur.Create(ctx, u); err != nil {
		if isDuplicate(err) {
			return nil, ErrTaken
		}
		return nil, err
	}
	return u, nil
}

func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *service) Update(ctx context.Context, id int64, name, studentID, email string, role model.Role) (*model.User, error) {
	if id <= 0 || name == "" || studentID == "" || email == "" {
		return nil, ErrBadInput
	}
	u := &model.User{ID: id, Name: name, StudentID: studentID, Email: email, Role: role}
	ok, err := s.ur.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]model.User, error) { return s.ur.List(ctx) }

func (s *service) ListDeleted(ctx context.Context) ([]model.User, error) {
	return s.ur.ListDeleted(ctx)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	ok, err := s.ur.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *service) Recover(ctx context.Context, id int64) error {
	ok, err := s.ur.Recover(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
