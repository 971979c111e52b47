package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookhive/bookhive-service/internal/errs"
	"github.com/bookhive/bookhive-service/internal/handler"
	"github.com/bookhive/bookhive-service/internal/model"
	pkgauth "github.com/bookhive/bookhive-service/pkg/auth"

	service_mocks "github.com/bookhive/bookhive-service/internal/handler/mocks"
)

var testJwtCfg = pkgauth.Config{
	Secret:     "test-secret",
	AccessTTL:  time.Hour,
	RefreshTTL: 24 * time.Hour,
}

type mocks struct {
	books   *service_mocks.MockBooksService
	summary *service_mocks.MockSummaryService
	library *service_mocks.MockLibraryService
	auth    *service_mocks.MockAuthService
}

func newTestRouter(t *testing.T) (*echo.Echo, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := mocks{
		books:   service_mocks.NewMockBooksService(ctrl),
		summary: service_mocks.NewMockSummaryService(ctrl),
		library: service_mocks.NewMockLibraryService(ctrl),
		auth:    service_mocks.NewMockAuthService(ctrl),
	}
	h := handler.New(m.books, m.summary, m.library, m.auth, testJwtCfg, zap.NewNop())
	return h.NewRouter(), m
}

func bearerToken(t *testing.T, userID int, username string) string {
	t.Helper()
	pair, err := pkgauth.NewTokenPair(testJwtCfg, userID, username)
	require.NoError(t, err)
	return "Bearer " + pair.Access
}

func strPtr(s string) *string { return &s }

func TestHandler_Search(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			query: "dune",
			mockBehavior: func(m mocks) {
				m.books.EXPECT().
					Search(gomock.Any(), "dune").
					Return([]model.UnifiedBook{
						{
							GoogleID: strPtr("zZaYDQAAQBAJ"),
							Title:    "Dune",
							Authors:  []string{"Frank Herbert"},
						},
					})
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"books":[{"google_id":"zZaYDQAAQBAJ","title":"Dune","authors":["Frank Herbert"],"thumbnail":null,"description":null}]}`,
			},
		},
		{
			name:  "provider down degrades to empty list",
			query: "dune",
			mockBehavior: func(m mocks) {
				m.books.EXPECT().
					Search(gomock.Any(), "dune").
					Return([]model.UnifiedBook{})
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"books":[]}`,
			},
		},
		{
			name:         "err. missing query",
			query:        "",
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Query parameter 'q' is required."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/search?q="+tt.query, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Details(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		googleID     string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:     "ok",
			googleID: "zZaYDQAAQBAJ",
			mockBehavior: func(m mocks) {
				m.books.EXPECT().
					GetOrCreateBookDetails(gomock.Any(), "zZaYDQAAQBAJ").
					Return(model.Book{
						ID:       1,
						GoogleID: "zZaYDQAAQBAJ",
						Title:    "Dune",
						Authors:  model.Authors{"Frank Herbert"},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"google_id":"zZaYDQAAQBAJ","title":"Dune","authors":["Frank Herbert"],"published_date":null,"thumbnail_url":null,"short_description":null}`,
			},
		},
		{
			name:     "err. not found",
			googleID: "nope",
			mockBehavior: func(m mocks) {
				m.books.EXPECT().
					GetOrCreateBookDetails(gomock.Any(), "nope").
					Return(model.Book{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found."}`,
			},
		},
		{
			name:     "err. internal",
			googleID: "zZaYDQAAQBAJ",
			mockBehavior: func(m mocks) {
				m.books.EXPECT().
					GetOrCreateBookDetails(gomock.Any(), "zZaYDQAAQBAJ").
					Return(model.Book{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/details/"+tt.googleID, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Summary(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)
	m.summary.EXPECT().
		GenerateAndCacheSummary(gomock.Any(), "zZaYDQAAQBAJ").
		Return("A desert planet epic.")

	r := httptest.NewRequest(http.MethodGet, "/api/v1/summary/zZaYDQAAQBAJ", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"summary":"A desert planet epic."}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Home(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)
	m.books.EXPECT().GenreTopBooks(gomock.Any()).Return([]model.UnifiedBook{})
	m.books.EXPECT().RecentBooks(gomock.Any()).Return([]model.UnifiedBook{})
	m.books.EXPECT().Bestsellers(gomock.Any()).Return([]model.UnifiedBook{
		{Title: "Fourth Wing", Authors: []string{"Rebecca Yarros"}, Rank: 1},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/home", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"carousel":[],"recent":[],"bestsellers":[{"google_id":null,"title":"Fourth Wing","authors":["Rebecca Yarros"],"thumbnail":null,"description":null,"rank":1}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CreateInteraction(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		body         string
		noAuth       bool
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"book_id":3,"status":"reading","is_favorite":true}`,
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					CreateInteraction(gomock.Any(), model.CreateInteractionRequest{
						BookID:     3,
						Status:     model.StatusReading,
						IsFavorite: true,
						UserID:     1,
					}).
					Return(model.Interaction{Status: model.StatusReading, IsFavorite: true}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"status":"reading","is_favorite":true}`,
			},
		},
		{
			name: "err. book not found",
			body: `{"book_id":999}`,
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					CreateInteraction(gomock.Any(), gomock.Any()).
					Return(model.Interaction{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Book not found."}`,
			},
		},
		{
			name: "err. duplicate",
			body: `{"book_id":3}`,
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					CreateInteraction(gomock.Any(), gomock.Any()).
					Return(model.Interaction{}, errs.ErrAlreadyExists)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Interaction already exists."}`,
			},
		},
		{
			name:         "err. no token",
			body:         `{"book_id":3}`,
			noAuth:       true,
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if !tt.noAuth {
				r.Header.Set("Authorization", bearerToken(t, 1, "alice"))
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateInteraction(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	reading := model.StatusReading

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"book_id":3,"status":"reading"}`,
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					UpdateInteraction(gomock.Any(), model.UpdateInteractionRequest{
						BookID: 3,
						Status: &reading,
						UserID: 1,
					}).
					Return(model.Interaction{Status: model.StatusReading}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"reading","is_favorite":false}`,
			},
		},
		{
			name:         "err. missing book_id",
			body:         `{"status":"reading"}`,
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book_id is required."}`,
			},
		},
		{
			name: "err. another user's interaction is invisible",
			body: `{"book_id":3,"status":"reading"}`,
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					UpdateInteraction(gomock.Any(), gomock.Any()).
					Return(model.Interaction{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Interaction not found."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPut, "/api/v1/interactions", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set("Authorization", bearerToken(t, 1, "alice"))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_MyLibrary(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)
	m.library.EXPECT().
		ListLibrary(gomock.Any(), 1).
		Return([]model.InteractionView{
			{
				User:       "alice",
				Status:     model.StatusCompleted,
				IsFavorite: true,
				Book: model.Book{
					ID:       3,
					GoogleID: "zZaYDQAAQBAJ",
					Title:    "Dune",
					Authors:  model.Authors{"Frank Herbert"},
				},
			},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/my-library", http.NoBody)
	r.Header.Set("Authorization", bearerToken(t, 1, "alice"))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"library":[{"user":"alice","status":"completed","is_favorite":true,"book":{"id":3,"google_id":"zZaYDQAAQBAJ","title":"Dune","authors":["Frank Herbert"],"published_date":null,"thumbnail_url":null,"short_description":null}}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Favorites(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)
	m.library.EXPECT().
		ListFavorites(gomock.Any(), 7).
		Return([]model.InteractionView{}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/favorites", http.NoBody)
	r.Header.Set("Authorization", bearerToken(t, 7, "bob"))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"favorites":[]}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CreateReview(t *testing.T) {
	t.Parallel()
	createdAt := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	e, m := newTestRouter(t)
	m.library.EXPECT().
		CreateReview(gomock.Any(), model.CreateReviewRequest{
			Rating:  5,
			Comment: "masterpiece",
			BookID:  3,
			UserID:  1,
		}).
		Return(model.Review{
			ID:        7,
			BookID:    3,
			UserID:    1,
			Username:  "alice",
			Rating:    5,
			Comment:   "masterpiece",
			CreatedAt: createdAt,
		}, nil)

	// user and book in the body are ignored: token and path win.
	body := `{"rating":5,"comment":"masterpiece","user":99,"book":42}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/books/3/reviews", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set("Authorization", bearerToken(t, 1, "alice"))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t,
		`{"id":7,"book":3,"user":1,"username":"alice","rating":5,"comment":"masterpiece","created_at":"2026-01-02T15:04:05Z"}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_UpdateReview(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	createdAt := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	rating := 4

	var tests = []struct {
		name         string
		reviewID     string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:     "ok",
			reviewID: "7",
			body:     `{"rating":4}`,
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					UpdateReview(gomock.Any(), 1, 7, model.UpdateReviewRequest{Rating: &rating}).
					Return(model.Review{
						ID:        7,
						BookID:    3,
						UserID:    1,
						Username:  "alice",
						Rating:    4,
						Comment:   "masterpiece",
						CreatedAt: createdAt,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":7,"book":3,"user":1,"username":"alice","rating":4,"comment":"masterpiece","created_at":"2026-01-02T15:04:05Z"}`,
			},
		},
		{
			name:     "err. not the owner",
			reviewID: "7",
			body:     `{"rating":4}`,
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					UpdateReview(gomock.Any(), 1, 7, gomock.Any()).
					Return(model.Review{}, errs.ErrPermission)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"Not the review owner."}`,
			},
		},
		{
			name:     "err. not found",
			reviewID: "404",
			body:     `{"rating":4}`,
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					UpdateReview(gomock.Any(), 1, 404, gomock.Any()).
					Return(model.Review{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Review not found."}`,
			},
		},
		{
			name:         "err. bad id",
			reviewID:     "abc",
			body:         `{"rating":4}`,
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"reviewId is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/"+tt.reviewID, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set("Authorization", bearerToken(t, 1, "alice"))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteReview(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					DeleteReview(gomock.Any(), 1, 7).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusNoContent,
				expectedBody: ``,
			},
		},
		{
			name: "err. not the owner",
			mockBehavior: func(m mocks) {
				m.library.EXPECT().
					DeleteReview(gomock.Any(), 1, 7).
					Return(errs.ErrPermission)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"Not the review owner."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/7", http.NoBody)
			r.Header.Set("Authorization", bearerToken(t, 1, "alice"))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"username":"alice","email":"alice@example.com","password":"sup3rsecret","password2":"sup3rsecret"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					Register(gomock.Any(), model.RegisterRequest{
						Username:  "alice",
						Email:     "alice@example.com",
						Password:  "sup3rsecret",
						Password2: "sup3rsecret",
					}).
					Return(model.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"username":"alice","email":"alice@example.com","first_name":"","last_name":"","phone":null}`,
			},
		},
		{
			name: "err. password mismatch",
			body: `{"username":"alice","password":"sup3rsecret","password2":"different1"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(model.User{}, errs.ErrPasswordMatch)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"` + errs.ErrPasswordMatch.Error() + `"}`,
			},
		},
		{
			name: "err. duplicate username",
			body: `{"username":"alice","password":"sup3rsecret","password2":"sup3rsecret"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(model.User{}, errs.ErrAlreadyExists)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"A user with that username or phone already exists."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"username":"alice","password":"sup3rsecret"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					Login(gomock.Any(), model.LoginRequest{Username: "alice", Password: "sup3rsecret"}).
					Return(model.AuthResponse{
						Refresh: "refresh-token",
						Access:  "access-token",
						User:    model.User{ID: 1, Username: "alice"},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"refresh":"refresh-token","access":"access-token","user":{"id":1,"username":"alice","email":"","first_name":"","last_name":"","phone":null}}`,
			},
		},
		{
			name: "err. bad credentials",
			body: `{"username":"alice","password":"wrongpass1"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(model.AuthResponse{}, errs.ErrBadPassword)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Invalid credentials"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ChangePassword(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					ChangePassword(gomock.Any(), 1, model.ChangePasswordRequest{
						OldPassword: "sup3rsecret",
						NewPassword: "n3wpassword",
					}).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"detail":"Password updated successfully."}`,
			},
		},
		{
			name: "err. wrong old password",
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					ChangePassword(gomock.Any(), 1, gomock.Any()).
					Return(errs.ErrBadPassword)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"` + errs.ErrBadPassword.Error() + `"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			body := `{"old_password":"sup3rsecret","new_password":"n3wpassword"}`
			r := httptest.NewRequest(http.MethodPut, "/api/v1/change-password", strings.NewReader(body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set("Authorization", bearerToken(t, 1, "alice"))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Me(t *testing.T) {
	t.Parallel()
	e, m := newTestRouter(t)
	m.auth.EXPECT().
		GetProfile(gomock.Any(), 1).
		Return(model.User{ID: 1, Username: "alice", Email: "alice@example.com", Phone: strPtr("9999999999")}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/me", http.NoBody)
	r.Header.Set("Authorization", bearerToken(t, 1, "alice"))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"id":1,"username":"alice","email":"alice@example.com","first_name":"","last_name":"","phone":"9999999999"}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_SendOTP(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"phone":"9999999999"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					SendOTP(gomock.Any(), "9999999999").
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"detail":"OTP sent to 9999999999"}`,
			},
		},
		{
			name:         "err. missing phone",
			body:         `{}`,
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Phone number is required"}`,
			},
		},
		{
			name: "err. delivery failure",
			body: `{"phone":"9999999999"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					SendOTP(gomock.Any(), "9999999999").
					Return(errs.ErrSMSDelivery)
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"` + errs.ErrSMSDelivery.Error() + `"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/send-otp", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_VerifyOTP(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(m mocks)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"phone":"9999999999","otp":"123456"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					VerifyOTP(gomock.Any(), model.VerifyOTPRequest{Phone: "9999999999", OTP: "123456"}).
					Return(model.AuthResponse{
						Refresh: "refresh-token",
						Access:  "access-token",
						User:    model.User{ID: 2, Username: "9999999999", Phone: strPtr("9999999999")},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"refresh":"refresh-token","access":"access-token","user":{"id":2,"username":"9999999999","email":"","first_name":"","last_name":"","phone":"9999999999"}}`,
			},
		},
		{
			name: "err. invalid or expired",
			body: `{"phone":"9999999999","otp":"000000"}`,
			mockBehavior: func(m mocks) {
				m.auth.EXPECT().
					VerifyOTP(gomock.Any(), gomock.Any()).
					Return(model.AuthResponse{}, errs.ErrInvalidOTP)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Invalid or expired OTP"}`,
			},
		},
		{
			name:         "err. missing fields",
			body:         `{"phone":"9999999999"}`,
			mockBehavior: func(m mocks) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Phone and OTP are required"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, m := newTestRouter(t)
			tt.mockBehavior(m)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/verify-otp", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ExpiredTokenRejected(t *testing.T) {
	t.Parallel()
	e, _ := newTestRouter(t)

	expiredCfg := testJwtCfg
	expiredCfg.AccessTTL = -time.Hour
	pair, err := pkgauth.NewTokenPair(expiredCfg, 1, "alice")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/me", http.NoBody)
	r.Header.Set("Authorization", "Bearer "+pair.Access)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
