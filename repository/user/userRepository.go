package userrepo

import (
	"context"
	"database/sql"

	"lendify/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByStudentID(ctx context.Context, studentID string) (*model.User, error)
	Update(ctx context.Context, u *model.User) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	ListDeleted(ctx context.Context) ([]model.User, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
	Recover(ctx context.Context, id int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users(name, student_id, email, password, role)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`,
		u.Name, u.StudentID, u.Email, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *repo) ByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, student_id, email, password, role, created_at
        FROM users
        WHERE student_id = $1
        AND deleted_at IS NULL`,
		studentID,
	).Scan(&u.ID, &u.Name, &u.StudentID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Update touches active users only; soft-deleted rows stay frozen.
func (r *repo) Update(ctx context.Context, u *model.User) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = $2, student_id = $3, email = $4, role = $5
		WHERE id = $1
		AND deleted_at IS NULL`,
		u.ID, u.Name, u.StudentID, u.Email, u.Role)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) List(ctx context.Context) ([]model.User, error) {
	const q = `
			SELECT id, name, student_id, email, role, created_at
			FROM users
			WHERE deleted_at IS NULL
			ORDER BY name ASC`
	return r.scanUsers(ctx, q, false)
}

func (r *repo) ListDeleted(ctx context.Context) ([]model.User, error) {
	const q = `
			SELECT id, name, student_id, email, role, created_at, deleted_at
			FROM users
			WHERE deleted_at IS NOT NULL
			ORDER BY deleted_at DESC`
	return r.scanUsers(ctx, q, true)
}

func (r *repo) scanUsers(ctx context.Context, q string, withDeleted bool) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		dest := []any{&u.ID, &u.Name, &u.StudentID, &u.Email, &u.Role, &u.CreatedAt}
		if withDeleted {
			dest = append(dest, &u.DeletedAt)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *repo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET deleted_at = now()
		WHERE id = $1
		AND deleted_at IS NULL`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (r *repo) Recover(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET deleted_at = NULL
		WHERE id = $1
		AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
