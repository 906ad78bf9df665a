package user

import (
	"context"
	"errors"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/user"
	"registration/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

const USERNAME_CONSTRAINT_NAME = "user_username_idx"

const userColumns = `id, username, email, password_hash, is_active, created_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxUserRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: dbtx}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (username, email, password_hash, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		string(input.Username),
		string(input.Email),
		string(input.PasswordHash),
		input.IsActive,
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if db.IsUniqueViolation(err, USERNAME_CONSTRAINT_NAME) {
		return u, user.ErrUsernameAlreadyExists
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	err = u.Validate()
	if err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) SetActive(ctx context.Context, id user.ID, isActive bool) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET is_active = $2 WHERE id = $1 RETURNING `+userColumns,
		int64(id),
		isActive,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		username     string
		email        string
		passwordHash string
		isActive     bool
		createdAt    time.Time
	)
	err = row.Scan(&id, &username, &email, &passwordHash, &isActive, &createdAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Username:     user.Username(username),
		Email:        c.Email(email),
		PasswordHash: user.PasswordHash(passwordHash),
		IsActive:     isActive,
		CreatedAt:    createdAt.UTC(),
	}, nil
}
