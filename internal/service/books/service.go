// Package books is the aggregation layer over the external catalog, the
// book store and the cache: search, get-or-create details, and the cached
// home-page listings.
package books

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
	"github.com/bookhive/bookhive-service/internal/repository"
	"github.com/bookhive/bookhive-service/internal/service/catalog"
	"github.com/bookhive/bookhive-service/pkg/cache"
)

const (
	searchMaxResults = 20
	homeLimit        = 10
	bestsellerList   = "hardcover-fiction"

	genreTopBooksKey = "genre_top_books"
	recentBooksKey   = "recent_books"
	bestsellersKey   = "bestsellers"

	listingTTL = 6 * time.Hour
)

// genres backing the home carousel, one top result each.
var genres = []string{"Science Fiction", "Science", "History", "Biography", "Fantasy", "Romance"}

type Service struct {
	repo    repository.Repository
	catalog catalog.Client
	cache   cache.Cache
	log     *zap.Logger
}

func NewService(repo repository.Repository, catalogClient catalog.Client, c cache.Cache, log *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogClient,
		cache:   c,
		log:     log.Named("books"),
	}
}

// Search queries the catalog and normalizes the hits in provider order.
// Catalog unavailability degrades to an empty list, never an error.
func (s *Service) Search(ctx context.Context, query string) []model.UnifiedBook {
	items, err := s.catalog.Search(ctx, query, searchMaxResults)
	if err != nil {
		s.log.Warn("catalog search", zap.String("query", query), zap.Error(err))
		return []model.UnifiedBook{}
	}
	return catalog.Normalize(items)
}

// GetOrCreateBookDetails returns the stored book for googleID, fetching and
// upserting it on first sight. A stored row short-circuits the network call,
// so the second call with the same id is a pure DB read.
func (s *Service) GetOrCreateBookDetails(ctx context.Context, googleID string) (model.Book, error) {
	book, err := s.repo.GetBookByGoogleID(ctx, googleID)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Book{}, err
	}

	item, err := s.catalog.FetchByID(ctx, googleID)
	if err != nil {
		s.log.Warn("catalog fetch", zap.String("google_id", googleID), zap.Error(err))
		return model.Book{}, errs.ErrNotFound
	}

	unified := item.Unify()
	return s.repo.UpsertBook(ctx, model.Book{
		GoogleID:         googleID,
		Title:            unified.Title,
		Authors:          unified.Authors,
		PublishedDate:    unified.PublishedDate,
		ThumbnailURL:     unified.Thumbnail,
		ShortDescription: unified.Description,
	})
}

// GenreTopBooks fetches the single top search hit per genre, in genre order.
func (s *Service) GenreTopBooks(ctx context.Context) []model.UnifiedBook {
	if books, ok := s.cached(ctx, genreTopBooksKey); ok {
		return books
	}

	found := make([]*model.UnifiedBook, len(genres))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, genre := range genres {
		i, genre := i, genre
		g.Go(func() error {
			items, err := s.catalog.Search(gctx, fmt.Sprintf("subject:%s", genre), 1)
			if err != nil {
				s.log.Warn("genre search", zap.String("genre", genre), zap.Error(err))
				return nil
			}
			if len(items) > 0 {
				book := items[0].Unify()
				found[i] = &book
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures degrade to gaps

	books := make([]model.UnifiedBook, 0, len(found))
	for _, b := range found {
		if b != nil {
			books = append(books, *b)
		}
	}
	s.store(ctx, genreTopBooksKey, books)
	return books
}

// RecentBooks lists recently published books via a single "newest" search.
func (s *Service) RecentBooks(ctx context.Context) []model.UnifiedBook {
	if books, ok := s.cached(ctx, recentBooksKey); ok {
		return books
	}

	items, err := s.catalog.Search(ctx, "newest", homeLimit)
	if err != nil {
		s.log.Warn("recent search", zap.Error(err))
		return []model.UnifiedBook{}
	}
	books := catalog.Normalize(items)
	s.store(ctx, recentBooksKey, books)
	return books
}

// Bestsellers lists the current NYT hardcover-fiction bestsellers.
func (s *Service) Bestsellers(ctx context.Context) []model.UnifiedBook {
	if books, ok := s.cached(ctx, bestsellersKey); ok {
		return books
	}

	items, err := s.catalog.FetchBestsellers(ctx, bestsellerList, homeLimit)
	if err != nil {
		s.log.Warn("bestsellers fetch", zap.Error(err))
		return []model.UnifiedBook{}
	}
	books := catalog.Normalize(items)
	s.store(ctx, bestsellersKey, books)
	return books
}

// cached reads a listing from the cache. Any cache failure counts as a miss.
func (s *Service) cached(ctx context.Context, key string) ([]model.UnifiedBook, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.log.Warn("cache get", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	var books []model.UnifiedBook
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		s.log.Warn("cache decode", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return books, true
}

// store writes a listing best-effort: a cache failure must not fail the
// read path, the value is simply recomputed next call.
func (s *Service) store(ctx context.Context, key string, books []model.UnifiedBook) {
	raw, err := json.Marshal(books)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), listingTTL); err != nil {
		s.log.Warn("cache set", zap.String("key", key), zap.Error(err))
	}
}
