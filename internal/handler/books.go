package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
)

func (h *Handler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter 'q' is required.")
	}

	books := h.booksSvc.Search(c.Request().Context(), query)
	return c.JSON(http.StatusOK, echo.Map{"books": books})
}

func (h *Handler) Details(c echo.Context) error {
	googleID := c.Param("googleId")

	book, err := h.booksSvc.GetOrCreateBookDetails(c.Request().Context(), googleID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

// Summary never errors: provider failures fall back to fixed messages.
func (h *Handler) Summary(c echo.Context) error {
	text := h.summarySvc.GenerateAndCacheSummary(c.Request().Context(), c.Param("googleId"))
	return c.JSON(http.StatusOK, echo.Map{"summary": text})
}

func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, model.HomeResponse{
		Carousel:    h.booksSvc.GenreTopBooks(ctx),
		Recent:      h.booksSvc.RecentBooks(ctx),
		Bestsellers: h.booksSvc.Bestsellers(ctx),
	})
}
