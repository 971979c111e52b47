// Package library owns the per-user data: reading-status interactions,
// favorites and reviews.
package library

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
	"github.com/bookhive/bookhive-service/internal/repository"
)

type Service struct {
	repo repository.Repository
	log  *zap.Logger
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.Named("library"),
	}
}

func (s *Service) CreateInteraction(ctx context.Context, req model.CreateInteractionRequest) (model.Interaction, error) {
	// The book reference is validated against the store, not trusted as-is.
	if _, err := s.repo.GetBookByID(ctx, req.BookID); err != nil {
		return model.Interaction{}, err
	}
	return s.repo.CreateInteraction(ctx, req)
}

func (s *Service) UpdateInteraction(ctx context.Context, req model.UpdateInteractionRequest) (model.Interaction, error) {
	return s.repo.UpdateInteraction(ctx, req)
}

func (s *Service) ListLibrary(ctx context.Context, userID int) ([]model.InteractionView, error) {
	return s.repo.ListInteractions(ctx, userID, false)
}

func (s *Service) ListFavorites(ctx context.Context, userID int) ([]model.InteractionView, error) {
	return s.repo.ListInteractions(ctx, userID, true)
}

func (s *Service) CreateReview(ctx context.Context, req model.CreateReviewRequest) (model.Review, error) {
	if _, err := s.repo.GetBookByID(ctx, req.BookID); err != nil {
		return model.Review{}, err
	}
	return s.repo.CreateReview(ctx, req)
}

// UpdateReview enforces object-level ownership: only the author may mutate.
func (s *Service) UpdateReview(ctx context.Context, userID, reviewID int, req model.UpdateReviewRequest) (model.Review, error) {
	review, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return model.Review{}, err
	}
	if review.UserID != userID {
		return model.Review{}, errs.ErrPermission
	}
	return s.repo.UpdateReview(ctx, reviewID, req)
}

func (s *Service) DeleteReview(ctx context.Context, userID, reviewID int) error {
	review, err := s.repo.GetReview(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return errs.ErrPermission
	}
	return s.repo.DeleteReview(ctx, reviewID)
}
