package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Authors is stored as a jsonb array to keep provider ordering.
type Authors []string

func (a Authors) Value() (driver.Value, error) {
	if a == nil {
		a = Authors{}
	}
	return json.Marshal(a)
}

func (a *Authors) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = Authors{}
		return nil
	default:
		return errors.Errorf("unsupported authors type %T", src)
	}
}

// Book is a persisted catalog record, keyed by the external identifier.
type Book struct {
	ID               int     `json:"id" db:"id"`
	GoogleID         string  `json:"google_id" db:"google_id"`
	Title            string  `json:"title" db:"title"`
	Authors          Authors `json:"authors" db:"authors"`
	PublishedDate    *string `json:"published_date" db:"published_date"`
	ThumbnailURL     *string `json:"thumbnail_url" db:"thumbnail_url"`
	ShortDescription *string `json:"short_description" db:"short_description"`
}

// UnifiedBook is the provider-agnostic search/listing record. Not persisted
// as-is; bestseller-sourced entries carry amazon_url and rank.
type UnifiedBook struct {
	GoogleID      *string  `json:"google_id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	PublishedDate *string  `json:"published_date,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Thumbnail     *string  `json:"thumbnail"`
	Description   *string  `json:"description"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	AmazonURL     *string  `json:"amazon_url,omitempty"`
	Rank          int      `json:"rank,omitempty"`
}

type Status string

const (
	StatusWantToRead Status = "want_to_read"
	StatusReading    Status = "reading"
	StatusCompleted  Status = "completed"
	StatusDropped    Status = "dropped"
)

// Interaction is one user's reading state for one book, unique per pair.
type Interaction struct {
	ID         int    `json:"-" db:"id"`
	UserID     int    `json:"-" db:"user_id"`
	BookID     int    `json:"-" db:"book_id"`
	Status     Status `json:"status" db:"status"`
	IsFavorite bool   `json:"is_favorite" db:"is_favorite"`
}

// InteractionView embeds the full book row for listing responses.
type InteractionView struct {
	User       string `json:"user" db:"username"`
	Status     Status `json:"status" db:"status"`
	IsFavorite bool   `json:"is_favorite" db:"is_favorite"`
	Book       Book   `json:"book" db:"book"`
}

type Review struct {
	ID        int       `json:"id" db:"id"`
	BookID    int       `json:"book" db:"book_id"`
	UserID    int       `json:"user" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type User struct {
	ID           int     `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	Email        string  `json:"email" db:"email"`
	FirstName    string  `json:"first_name" db:"first_name"`
	LastName     string  `json:"last_name" db:"last_name"`
	Phone        *string `json:"phone" db:"phone"`
	PasswordHash string  `json:"-" db:"password_hash"`
}

type CreateInteractionRequest struct {
	BookID     int    `json:"book_id" validate:"required"`
	Status     Status `json:"status" validate:"omitempty,oneof=want_to_read reading completed dropped"`
	IsFavorite bool   `json:"is_favorite"`
	UserID     int    `json:"-"`
}

type UpdateInteractionRequest struct {
	BookID     int     `json:"book_id" validate:"required"`
	Status     *Status `json:"status" validate:"omitempty,oneof=want_to_read reading completed dropped"`
	IsFavorite *bool   `json:"is_favorite"`
	UserID     int     `json:"-"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
	BookID  int    `json:"-"`
	UserID  int    `json:"-"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
}

type UpdateProfileRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SendOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type AuthResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
	User    User   `json:"user"`
}

type HomeResponse struct {
	Carousel    []UnifiedBook `json:"carousel"`
	Recent      []UnifiedBook `json:"recent"`
	Bestsellers []UnifiedBook `json:"bestsellers"`
}
