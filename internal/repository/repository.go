package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/internal/model"
)

type Repository interface {
	GetBookByGoogleID(ctx context.Context, googleID string) (model.Book, error)
	GetBookByID(ctx context.Context, id int) (model.Book, error)
	UpsertBook(ctx context.Context, book model.Book) (model.Book, error)

	CreateInteraction(ctx context.Context, req model.CreateInteractionRequest) (model.Interaction, error)
	UpdateInteraction(ctx context.Context, req model.UpdateInteractionRequest) (model.Interaction, error)
	ListInteractions(ctx context.Context, userID int, favoritesOnly bool) ([]model.InteractionView, error)

	CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error)
	GetReview(ctx context.Context, id int) (model.Review, error)
	UpdateReview(ctx context.Context, id int, req model.UpdateReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, id int) error

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetOrCreateUserByPhone(ctx context.Context, phone string) (model.User, error)
	UpdateUserProfile(ctx context.Context, id int, req model.UpdateProfileRequest) (model.User, error)
	UpdateUserPassword(ctx context.Context, id int, passwordHash string) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName        = `books`
	usersTableName        = `users`
	interactionsTableName = `user_book_interactions`
	reviewsTableName      = `reviews`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
