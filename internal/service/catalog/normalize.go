package catalog

import (
	"github.com/bookhive/bookhive-service/internal/model"
)

const unknownTitle = "Unknown Title"

// Item is a provider-tagged raw record. Both providers map into the same
// unified shape; normalization tolerates any missing fields and never fails.
type Item interface {
	Unify() model.UnifiedBook
}

// VolumeItem is a raw Google Books volume.
type VolumeItem struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title         string   `json:"title"`
		Authors       []string `json:"authors"`
		PublishedDate string   `json:"publishedDate"`
		Categories    []string `json:"categories"`
		Description   string   `json:"description"`
		AverageRating float64  `json:"averageRating"`
		ImageLinks    struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

func (v VolumeItem) Unify() model.UnifiedBook {
	info := v.VolumeInfo

	title := info.Title
	if title == "" {
		title = unknownTitle
	}

	book := model.UnifiedBook{
		Title:       title,
		Authors:     info.Authors,
		Categories:  info.Categories,
		Thumbnail:   optional(info.ImageLinks.Thumbnail),
		Description: optional(info.Description),
	}
	if book.Authors == nil {
		book.Authors = []string{}
	}
	if v.ID != "" {
		book.GoogleID = &v.ID
	}
	if info.PublishedDate != "" {
		book.PublishedDate = &info.PublishedDate
	}
	if info.AverageRating != 0 {
		rating := info.AverageRating
		book.AverageRating = &rating
	}
	return book
}

// BestsellerItem is a raw NYT bestseller-list entry.
type BestsellerItem struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	Description      string `json:"description"`
	BookImage        string `json:"book_image"`
	AmazonProductURL string `json:"amazon_product_url"`
	Rank             int    `json:"rank"`
}

func (b BestsellerItem) Unify() model.UnifiedBook {
	title := b.Title
	if title == "" {
		title = unknownTitle
	}

	authors := []string{}
	if b.Author != "" {
		authors = append(authors, b.Author)
	}

	return model.UnifiedBook{
		Title:       title,
		Authors:     authors,
		Thumbnail:   optional(b.BookImage),
		Description: optional(b.Description),
		AmazonURL:   optional(b.AmazonProductURL),
		Rank:        b.Rank,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Normalize maps a batch of provider records, preserving order.
func Normalize[T Item](items []T) []model.UnifiedBook {
	books := make([]model.UnifiedBook, 0, len(items))
	for _, item := range items {
		books = append(books, item.Unify())
	}
	return books
}
