package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
)

const bookColumns = `id, google_id, title, authors, published_date, thumbnail_url, short_description`

func (r *repository) GetBookByGoogleID(ctx context.Context, googleID string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns).
		From(booksTableName).
		Where(sq.Eq{"google_id": googleID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBookByID(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// UpsertBook is keyed by google_id so a race between two first-fetches
// cannot produce duplicate rows; last write wins.
func (r *repository) UpsertBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := `
insert into books (google_id, title, authors, published_date, thumbnail_url, short_description, updated_at)
values ($1, $2, $3, $4, $5, $6, now())
on conflict (google_id) do update
    set title             = excluded.title,
        authors           = excluded.authors,
        published_date    = excluded.published_date,
        thumbnail_url     = excluded.thumbnail_url,
        short_description = excluded.short_description,
        updated_at        = now()
returning ` + bookColumns

	var stored model.Book
	if err := r.db.GetContext(ctx, &stored, q,
		book.GoogleID, book.Title, book.Authors,
		book.PublishedDate, book.ThumbnailURL, book.ShortDescription,
	); err != nil {
		r.log.Error("UpsertBook", zap.String("google_id", book.GoogleID), zap.Error(err))
		return model.Book{}, err
	}
	return stored, nil
}
