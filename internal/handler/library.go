package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
	pkgauth "github.com/bookhive/bookhive-service/pkg/auth"
)

func (h *Handler) CreateInteraction(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.CreateInteractionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.UserID = userID

	in, err := h.librarySvc.CreateInteraction(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
		case errors.Is(err, errs.ErrAlreadyExists):
			return echo.NewHTTPError(http.StatusBadRequest, "Interaction already exists.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, in)
}

// UpdateInteraction looks the record up by (caller, book_id): a caller can
// never reach another user's interaction.
func (h *Handler) UpdateInteraction(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.UpdateInteractionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.BookID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "book_id is required.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.UserID = userID

	in, err := h.librarySvc.UpdateInteraction(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Interaction not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, in)
}

func (h *Handler) MyLibrary(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	library, err := h.librarySvc.ListLibrary(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"library": library})
}

func (h *Handler) Favorites(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	favorites, err := h.librarySvc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"favorites": favorites})
}

// CreateReview forces user and book server-side: the user comes from the
// token, the book from the path, never from the body.
func (h *Handler) CreateReview(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bookId is invalid")
	}

	var req model.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.UserID = userID
	req.BookID = bookID

	review, err := h.librarySvc.CreateReview(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Book not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) UpdateReview(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	reviewID, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "reviewId is invalid")
	}

	var req model.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.librarySvc.UpdateReview(c.Request().Context(), userID, reviewID, req)
	if err != nil {
		return reviewError(err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *Handler) DeleteReview(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	reviewID, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "reviewId is invalid")
	}

	if err := h.librarySvc.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return reviewError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func reviewError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Review not found.")
	case errors.Is(err, errs.ErrPermission):
		return echo.NewHTTPError(http.StatusForbidden, "Not the review owner.")
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
