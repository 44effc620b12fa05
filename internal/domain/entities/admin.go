package entities

import "time"

// Admin represents a platform administrator account
type Admin struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateAdminInput represents input for registering an admin. Creation
// is gated by a shared bootstrap secret checked before anything else.
type CreateAdminInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateAdminInput represents a partial admin update
type UpdateAdminInput struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
