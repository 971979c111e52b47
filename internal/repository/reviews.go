package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
)

const reviewColumns = `r.id, r.book_id, r.user_id, u.username, r.rating, r.comment, r.created_at`

func (r *repository) CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error) {
	q := `
insert into reviews (user_id, book_id, rating, comment)
values ($1, $2, $3, $4)
returning id, created_at`

	var (
		id        int
		createdAt sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, q, req.UserID, req.BookID, req.Rating, req.Comment).
		Scan(&id, &createdAt); err != nil {
		return model.Review{}, err
	}
	return r.GetReview(ctx, id)
}

func (r *repository) GetReview(ctx context.Context, id int) (model.Review, error) {
	query, args, err := qb.Select(reviewColumns).
		From(reviewsTableName + " r").
		Join(usersTableName + " u on u.id = r.user_id").
		Where(sq.Eq{"r.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var review model.Review
	if err := r.db.GetContext(ctx, &review, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

func (r *repository) UpdateReview(ctx context.Context, id int, req model.UpdateReviewRequest) (model.Review, error) {
	q := qb.Update(reviewsTableName).
		Where(sq.Eq{"id": id}).
		Suffix("returning id")

	set := false
	if req.Rating != nil {
		q = q.Set("rating", *req.Rating)
		set = true
	}
	if req.Comment != nil {
		q = q.Set("comment", *req.Comment)
		set = true
	}
	if !set {
		return r.GetReview(ctx, id)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var updatedID int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrNotFound
		}
		return model.Review{}, err
	}
	return r.GetReview(ctx, updatedID)
}

func (r *repository) DeleteReview(ctx context.Context, id int) error {
	query, args, err := qb.Delete(reviewsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
