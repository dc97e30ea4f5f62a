package model

import (
	"errors"
	"time"
)

// User represents a registered account.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	PasswordHashed string    `db:"password_hashed" json:"-"` // "-" hides from JSON output
	Image          *string   `db:"image" json:"image"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// UserSummary is the trimmed user shape embedded in follower/following lists.
type UserSummary struct {
	ID    int64   `db:"id" json:"id"`
	Name  string  `db:"name" json:"name"`
	Image *string `db:"image" json:"image"`
}

// SignUpRequest carries the sign-up form fields.
type SignUpRequest struct {
	Name          string
	Email         string
	Password      string
	PasswordCheck string
}

// SignInRequest carries the sign-in form fields.
type SignInRequest struct {
	Email    string
	Password string
}

// Profile is the view context produced for a user's profile page.
// CommentedRestaurants is the target's commented restaurants deduplicated by
// restaurant id, keeping the order in which they were first commented on.
type Profile struct {
	User                 *User         `json:"user"`
	Comments             []Comment     `json:"comments"`
	CommentedRestaurants []Restaurant  `json:"commented_restaurants"`
	FavoritedRestaurants []Restaurant  `json:"favorited_restaurants"`
	Followers            []UserSummary `json:"followers"`
	Followings           []UserSummary `json:"followings"`
	Owner                bool          `json:"owner"`
	IsFollowed           bool          `json:"is_followed"`
}

// TopUser is one row of the most-followed leaderboard.
//
// Owner is true when the listed user is NOT the viewer. The polarity is the
// opposite of Profile.Owner; the templates consuming this flag depend on it,
// so it is kept as-is.
type TopUser struct {
	UserSummary
	FollowerCount int  `db:"follower_count" json:"follower_count"`
	IsFollowed    bool `json:"is_followed"`
	Owner         bool `json:"owner"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailExists is returned when attempting to register a taken email
	ErrEmailExists = errors.New("email already exists")

	// ErrPasswordMismatch is returned when password and passwordCheck differ
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is returned when sign-in credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotProfileOwner is returned when a user tries to edit someone else's
	// profile. Handlers turn it into a flash + redirect, not an error page.
	ErrNotProfileOwner = errors.New("cannot edit another user's profile")
)
