package models

import (
	"time"

	"github.com/google/uuid"
)

// ChattinessLevel describes how talkative a user is during a trip
type ChattinessLevel string

const (
	ChattinessQuiet    ChattinessLevel = "quiet"
	ChattinessModerate ChattinessLevel = "moderate"
	ChattinessChatty   ChattinessLevel = "chatty"
)

// SmokingPolicy describes a user's smoking preference
type SmokingPolicy string

const (
	SmokingNone    SmokingPolicy = "no_smoking"
	SmokingBreaks  SmokingPolicy = "smoking_breaks"
	SmokingAllowed SmokingPolicy = "smoking_allowed"
)

// PetPolicy describes a user's pet preference
type PetPolicy string

const (
	PetsNone  PetPolicy = "no_pets"
	PetsSmall PetPolicy = "small_pets"
	PetsAll   PetPolicy = "all_pets"
)

// User represents a registered account
type User struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Email          string          `json:"email" db:"email"`
	PasswordHash   string          `json:"-" db:"password_hash"`
	FirstName      string          `json:"first_name" db:"first_name"`
	LastName       string          `json:"last_name" db:"last_name"`
	Bio            string          `json:"bio,omitempty" db:"bio"`
	ProfilePicture string          `json:"profile_picture,omitempty" db:"profile_picture"`
	Chattiness     ChattinessLevel `json:"chattiness" db:"chattiness"`
	Smoking        SmokingPolicy   `json:"smoking" db:"smoking"`
	Pets           PetPolicy       `json:"pets" db:"pets"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a signed token back to the client
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at"`
	UserID    uuid.UUID `json:"user_id"`
}

// UpdateProfileRequest is the payload for editing personal details and
// travel preferences
type UpdateProfileRequest struct {
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Bio            string          `json:"bio,omitempty"`
	ProfilePicture string          `json:"profile_picture,omitempty"`
	Chattiness     ChattinessLevel `json:"chattiness,omitempty"`
	Smoking        SmokingPolicy   `json:"smoking,omitempty"`
	Pets           PetPolicy       `json:"pets,omitempty"`
}

// UserProfile is the public view of a user with aggregates
type UserProfile struct {
	User     *User         `json:"user"`
	Vehicles []Vehicle     `json:"vehicles"`
	Rating   RatingSummary `json:"rating"`
}
