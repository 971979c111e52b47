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

func (r *repository) CreateInteraction(ctx context.Context, req model.CreateInteractionRequest) (model.Interaction, error) {
	status := req.Status
	if status == "" {
		status = model.StatusWantToRead
	}
	query, args, err := qb.Insert(interactionsTableName).
		Columns("user_id", "book_id", "status", "is_favorite").
		Values(req.UserID, req.BookID, status, req.IsFavorite).
		Suffix("returning id, user_id, book_id, status, is_favorite").
		ToSql()
	if err != nil {
		return model.Interaction{}, err
	}

	var in model.Interaction
	if err := r.db.GetContext(ctx, &in, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Interaction{}, errs.ErrAlreadyExists
		}
		r.log.Error("CreateInteraction", zap.Int("book_id", req.BookID), zap.Error(err))
		return model.Interaction{}, err
	}
	return in, nil
}

// UpdateInteraction is scoped to the caller's own records: the lookup key is
// (user_id, book_id), never the raw interaction id.
func (r *repository) UpdateInteraction(ctx context.Context, req model.UpdateInteractionRequest) (model.Interaction, error) {
	q := qb.Update(interactionsTableName).
		Where(sq.Eq{"user_id": req.UserID}).
		Where(sq.Eq{"book_id": req.BookID}).
		Suffix("returning id, user_id, book_id, status, is_favorite")

	set := false
	if req.Status != nil {
		q = q.Set("status", *req.Status)
		set = true
	}
	if req.IsFavorite != nil {
		q = q.Set("is_favorite", *req.IsFavorite)
		set = true
	}
	if !set {
		// Partial update with an empty patch is a no-op read.
		return r.getInteraction(ctx, req.UserID, req.BookID)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.Interaction{}, err
	}

	var in model.Interaction
	if err := r.db.GetContext(ctx, &in, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Interaction{}, errs.ErrNotFound
		}
		return model.Interaction{}, err
	}
	return in, nil
}

func (r *repository) getInteraction(ctx context.Context, userID, bookID int) (model.Interaction, error) {
	query, args, err := qb.Select("id", "user_id", "book_id", "status", "is_favorite").
		From(interactionsTableName).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Interaction{}, err
	}

	var in model.Interaction
	if err := r.db.GetContext(ctx, &in, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Interaction{}, errs.ErrNotFound
		}
		return model.Interaction{}, err
	}
	return in, nil
}

func (r *repository) ListInteractions(ctx context.Context, userID int, favoritesOnly bool) ([]model.InteractionView, error) {
	q := qb.Select(
		`u.username`,
		`i.status`, `i.is_favorite`,
		`b.id as "book.id"`, `b.google_id as "book.google_id"`, `b.title as "book.title"`,
		`b.authors as "book.authors"`, `b.published_date as "book.published_date"`,
		`b.thumbnail_url as "book.thumbnail_url"`, `b.short_description as "book.short_description"`,
	).
		From(interactionsTableName + " i").
		Join(booksTableName + " b on b.id = i.book_id").
		Join(usersTableName + " u on u.id = i.user_id").
		Where(sq.Eq{"i.user_id": userID}).
		OrderBy("i.id")

	if favoritesOnly {
		q = q.Where(sq.Eq{"i.is_favorite": true})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListInteractions", zap.String("query", query), zap.Any("args", args))

	views := make([]model.InteractionView, 0)
	if err := r.db.SelectContext(ctx, &views, query, args...); err != nil {
		return nil, err
	}
	return views, nil
}
