package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/model"
	pkgauth "github.com/bookhive/bookhive-service/pkg/auth"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authSvc.Register(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPasswordMatch),
			errors.Is(err, errs.ErrWeakPassword):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrAlreadyExists):
			return echo.NewHTTPError(http.StatusBadRequest, "A user with that username or phone already exists.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.authSvc.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrBadPassword) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	user, err := h.authSvc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateMe(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authSvc.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return echo.NewHTTPError(http.StatusBadRequest, "Phone already in use.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ChangePassword(c echo.Context) error {
	userID, err := pkgauth.UserID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.authSvc.ChangePassword(c.Request().Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, errs.ErrBadPassword),
			errors.Is(err, errs.ErrWeakPassword):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Password updated successfully."})
}

func (h *Handler) SendOTP(c echo.Context) error {
	var req model.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Phone number is required")
	}

	if err := h.authSvc.SendOTP(c.Request().Context(), req.Phone); err != nil {
		// OTP delivery has no fallback, so the failure surfaces.
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "OTP sent to " + req.Phone})
}

func (h *Handler) VerifyOTP(c echo.Context) error {
	var req model.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Phone == "" || req.OTP == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Phone and OTP are required")
	}

	resp, err := h.authSvc.VerifyOTP(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidOTP) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired OTP")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}
