package profile

import (
	"context"
	"errors"
	"registration/internal/core/domain/activation"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/user"
	"registration/internal/db"

	"github.com/jackc/pgx/v4"
)

const USER_ID_CONSTRAINT_NAME = "registration_profile_user_id_idx"

const profileColumns = `id, user_id, activation_key`

type PgxProfileRepository struct {
	db db.DBTX
}

func NewPgxProfileRepository(dbtx db.DBTX) *PgxProfileRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxProfileRepository{db: dbtx}
}

func (r *PgxProfileRepository) Create(
	ctx context.Context,
	input activation.CreateProfileInput,
) (p activation.Profile, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO registration_profile (user_id, activation_key) VALUES ($1, $2) RETURNING `+profileColumns,
		int64(input.UserID),
		string(input.Key),
	)
	p, err = scanProfile(row)
	if db.IsUniqueViolation(err, USER_ID_CONSTRAINT_NAME) {
		return p, activation.ErrProfileAlreadyExists
	}
	if err != nil {
		return p, err
	}
	return p, p.Validate()
}

func (r *PgxProfileRepository) GetByKey(ctx context.Context, key activation.Key) (activation.Profile, error) {
	return r.getOne(
		ctx,
		`SELECT `+profileColumns+` FROM registration_profile WHERE activation_key = $1`,
		string(key),
	)
}

func (r *PgxProfileRepository) GetByKeyWithLock(ctx context.Context, key activation.Key) (activation.Profile, error) {
	return r.getOne(
		ctx,
		`SELECT `+profileColumns+` FROM registration_profile WHERE activation_key = $1 FOR UPDATE`,
		string(key),
	)
}

func (r *PgxProfileRepository) GetByUserID(ctx context.Context, userID user.ID) (activation.Profile, error) {
	return r.getOne(
		ctx,
		`SELECT `+profileColumns+` FROM registration_profile WHERE user_id = $1`,
		int64(userID),
	)
}

func (r *PgxProfileRepository) SetKey(
	ctx context.Context,
	id activation.ProfileID,
	key activation.Key,
) (activation.Profile, error) {
	return r.getOne(
		ctx,
		`UPDATE registration_profile SET activation_key = $2 WHERE id = $1 RETURNING `+profileColumns,
		int64(id),
		string(key),
	)
}

func (r *PgxProfileRepository) getOne(ctx context.Context, sql string, args ...interface{}) (p activation.Profile, err error) {
	p, err = scanProfile(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return p, activation.ErrProfileDoesNotExist
	}
	if err != nil {
		return p, err
	}
	return p, p.Validate()
}

func scanProfile(row pgx.Row) (p activation.Profile, err error) {
	var (
		id     int64
		userID int64
		key    string
	)
	if err = row.Scan(&id, &userID, &key); err != nil {
		return p, err
	}
	return activation.Profile{
		ID:     activation.ProfileID(id),
		UserID: user.ID(userID),
		Key:    activation.Key(key),
	}, nil
}
