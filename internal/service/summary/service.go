// Package summary serves cached, spoiler-free AI book summaries.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/repository"
	"github.com/bookhive/bookhive-service/pkg/cache"
)

const (
	cacheKeyPrefix = "book_summary_gemini_"
	summaryTTL     = 24 * time.Hour

	// Fixed fallbacks: the summary endpoint never errors.
	msgBookMissing = "Summary not available because the book is not in our database."
	msgAIError     = "Summary not available due to an AI error."
)

type Service struct {
	repo      repository.Repository
	cache     cache.Cache
	generator Generator
	log       *zap.Logger
}

func NewService(repo repository.Repository, c cache.Cache, generator Generator, log *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     c,
		generator: generator,
		log:       log.Named("summary"),
	}
}

// GenerateAndCacheSummary returns the summary for a stored book, generating
// and caching it on first request. Only successful generations are cached:
// a missing book or an AI failure yields a fixed message and no cache write,
// so the next request retries.
func (s *Service) GenerateAndCacheSummary(ctx context.Context, googleID string) string {
	key := cacheKeyPrefix + googleID
	if cached, err := s.cache.Get(ctx, key); err == nil {
		return cached
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("cache get", zap.String("key", key), zap.Error(err))
	}

	book, err := s.repo.GetBookByGoogleID(ctx, googleID)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Error("book lookup", zap.String("google_id", googleID), zap.Error(err))
		}
		return msgBookMissing
	}

	authors := []string(book.Authors)
	if len(authors) == 0 {
		authors = []string{"Unknown Author"}
	}
	prompt := fmt.Sprintf(
		"Write a spoiler-free, engaging, and concise summary (about 150 words) for the book titled '%s' by %s.",
		book.Title, strings.Join(authors, ", "),
	)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("gemini generate", zap.String("google_id", googleID), zap.Error(err))
		return msgAIError
	}

	if err := s.cache.Set(ctx, key, text, summaryTTL); err != nil {
		s.log.Warn("cache set", zap.String("key", key), zap.Error(err))
	}
	return text
}
