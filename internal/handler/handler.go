package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	md "github.com/bookhive/bookhive-service/pkg/middleware"

	pkgauth "github.com/bookhive/bookhive-service/pkg/auth"
	"github.com/bookhive/bookhive-service/pkg/validate"
)

type Handler struct {
	booksSvc   BooksService
	summarySvc SummaryService
	librarySvc LibraryService
	authSvc    AuthService
	jwtCfg     pkgauth.Config
	log        *zap.Logger
}

func New(booksSvc BooksService, summarySvc SummaryService, librarySvc LibraryService, authSvc AuthService, jwtCfg pkgauth.Config, log *zap.Logger) *Handler {
	return &Handler{
		booksSvc:   booksSvc,
		summarySvc: summarySvc,
		librarySvc: librarySvc,
		authSvc:    authSvc,
		jwtCfg:     jwtCfg,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/search", h.Search)
	api.GET("/details/:googleId", h.Details)
	api.GET("/summary/:googleId", h.Summary)
	api.GET("/home", h.Home)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/send-otp", h.SendOTP)
	api.POST("/verify-otp", h.VerifyOTP)

	authed := api.Group("", md.JwtAuthentication(h.jwtCfg))
	authed.POST("/interactions", h.CreateInteraction)
	authed.PUT("/interactions", h.UpdateInteraction)
	authed.GET("/my-library", h.MyLibrary)
	authed.GET("/favorites", h.Favorites)
	authed.POST("/books/:bookId/reviews", h.CreateReview)
	authed.PUT("/reviews/:reviewId", h.UpdateReview)
	authed.DELETE("/reviews/:reviewId", h.DeleteReview)
	authed.GET("/me", h.Me)
	authed.PUT("/me", h.UpdateMe)
	authed.PUT("/change-password", h.ChangePassword)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
