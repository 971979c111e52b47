// Package catalog talks to the external book catalogs: Google Books for
// search/detail lookups and the NYT Books API for bestseller lists.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/config"
)

type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]VolumeItem, error)
	FetchByID(ctx context.Context, googleID string) (VolumeItem, error)
	FetchBestsellers(ctx context.Context, listName string, limit int) ([]BestsellerItem, error)
}

type client struct {
	cfg    config.Catalog
	client *http.Client
	log    *zap.Logger
}

func NewClient(cfg config.Catalog, log *zap.Logger) *client {
	return &client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.Named("catalog"),
	}
}

type searchResponse struct {
	Items []VolumeItem `json:"items"`
}

func (c *client) Search(ctx context.Context, query string, maxResults int) ([]VolumeItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	if c.cfg.GoogleBooksAPIKey != "" {
		params.Set("key", c.cfg.GoogleBooksAPIKey)
	}

	var resp searchResponse
	if err := c.getJSON(ctx, c.cfg.GoogleBooksBaseURL+"/volumes?"+params.Encode(), &resp); err != nil {
		return nil, errors.Wrap(err, "google books search")
	}
	return resp.Items, nil
}

func (c *client) FetchByID(ctx context.Context, googleID string) (VolumeItem, error) {
	params := url.Values{}
	if c.cfg.GoogleBooksAPIKey != "" {
		params.Set("key", c.cfg.GoogleBooksAPIKey)
	}
	u := fmt.Sprintf("%s/volumes/%s", c.cfg.GoogleBooksBaseURL, url.PathEscape(googleID))
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}

	var item VolumeItem
	if err := c.getJSON(ctx, u, &item); err != nil {
		return VolumeItem{}, errors.Wrapf(err, "google books fetch %s", googleID)
	}
	return item, nil
}

type bestsellerResponse struct {
	Results struct {
		Books []BestsellerItem `json:"books"`
	} `json:"results"`
}

func (c *client) FetchBestsellers(ctx context.Context, listName string, limit int) ([]BestsellerItem, error) {
	params := url.Values{}
	params.Set("api-key", c.cfg.NYTAPIKey)
	u := fmt.Sprintf("%s/lists/current/%s.json?%s", c.cfg.NYTBaseURL, url.PathEscape(listName), params.Encode())

	var resp bestsellerResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		return nil, errors.Wrap(err, "nyt bestsellers")
	}

	books := resp.Results.Books
	if limit > 0 && len(books) > limit {
		books = books[:limit]
	}
	return books, nil
}

func (c *client) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
