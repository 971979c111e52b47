package handler

import (
	"context"

	"github.com/bookhive/bookhive-service/internal/model"
	"github.com/bookhive/bookhive-service/internal/service/auth"
	"github.com/bookhive/bookhive-service/internal/service/books"
	"github.com/bookhive/bookhive-service/internal/service/library"
	"github.com/bookhive/bookhive-service/internal/service/summary"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BooksService interface {
	Search(ctx context.Context, query string) []model.UnifiedBook
	GetOrCreateBookDetails(ctx context.Context, googleID string) (model.Book, error)
	GenreTopBooks(ctx context.Context) []model.UnifiedBook
	RecentBooks(ctx context.Context) []model.UnifiedBook
	Bestsellers(ctx context.Context) []model.UnifiedBook
}

type SummaryService interface {
	GenerateAndCacheSummary(ctx context.Context, googleID string) string
}

type LibraryService interface {
	CreateInteraction(ctx context.Context, req model.CreateInteractionRequest) (model.Interaction, error)
	UpdateInteraction(ctx context.Context, req model.UpdateInteractionRequest) (model.Interaction, error)
	ListLibrary(ctx context.Context, userID int) ([]model.InteractionView, error)
	ListFavorites(ctx context.Context, userID int) ([]model.InteractionView, error)
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error)
	UpdateReview(ctx context.Context, userID, reviewID int, req model.UpdateReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID int) error
}

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	GetProfile(ctx context.Context, userID int) (model.User, error)
	UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error)
	ChangePassword(ctx context.Context, userID int, req model.ChangePasswordRequest) error
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, req model.VerifyOTPRequest) (model.AuthResponse, error)
}

var (
	_ BooksService   = (*books.Service)(nil)
	_ SummaryService = (*summary.Service)(nil)
	_ LibraryService = (*library.Service)(nil)
	_ AuthService    = (*auth.Service)(nil)
)
