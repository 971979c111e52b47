package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
)

const userColumns = `id, username, email, first_name, last_name, phone, password_hash`

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "first_name", "last_name", "phone", "password_hash").
		Values(user.Username, user.Email, user.FirstName, user.LastName, user.Phone, user.PasswordHash).
		Suffix("returning " + userColumns).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrAlreadyExists
		}
		r.log.Error("CreateUser", zap.String("username", user.Username), zap.Error(err))
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUserByID(ctx context.Context, id int) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *repository) getUser(ctx context.Context, pred sq.Eq) (model.User, error) {
	query, args, err := qb.Select(userColumns).
		From(usersTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

// GetOrCreateUserByPhone backs OTP login: the account is keyed by phone with
// username = phone and an unusable password hash. Insert-or-select keeps the
// call idempotent under concurrent verifications.
func (r *repository) GetOrCreateUserByPhone(ctx context.Context, phone string) (model.User, error) {
	user, err := r.getUser(ctx, sq.Eq{"phone": phone})
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.User{}, err
	}

	created, err := r.CreateUser(ctx, model.User{
		Username:     phone,
		Phone:        &phone,
		PasswordHash: "!",
	})
	if errors.Is(err, errs.ErrAlreadyExists) {
		// Lost the race to a concurrent verification.
		return r.getUser(ctx, sq.Eq{"phone": phone})
	}
	return created, err
}

func (r *repository) UpdateUserProfile(ctx context.Context, id int, req model.UpdateProfileRequest) (model.User, error) {
	q := qb.Update(usersTableName).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + userColumns)

	set := false
	if req.Email != nil {
		q = q.Set("email", *req.Email)
		set = true
	}
	if req.FirstName != nil {
		q = q.Set("first_name", *req.FirstName)
		set = true
	}
	if req.LastName != nil {
		q = q.Set("last_name", *req.LastName)
		set = true
	}
	if req.Phone != nil {
		q = q.Set("phone", *req.Phone)
		set = true
	}
	if !set {
		return r.GetUserByID(ctx, id)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrAlreadyExists
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) UpdateUserPassword(ctx context.Context, id int, passwordHash string) error {
	query, args, err := qb.Update(usersTableName).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}
