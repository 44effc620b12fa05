package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Founder represents a campaign owner account
type Founder struct {
	ID             uint        `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	PasswordHash   string      `json:"-"`
	ContactDetails null.String `json:"contactDetails,omitempty"`
	CompanyName    null.String `json:"companyName,omitempty"`
	Industry       null.String `json:"industry,omitempty"`
	Role           null.String `json:"role,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// CreateFounderInput represents input for registering a founder
type CreateFounderInput struct {
	FullName       string `json:"fullName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	ContactDetails string `json:"contact_details"`
	Industry       string `json:"industry"`
	Role           string `json:"role"`
	CompanyName    string `json:"companyName"`
}

// UpdateFounderInput represents a partial founder update. Only fields
// present in the request body are applied.
type UpdateFounderInput struct {
	Name           null.String `json:"name"`
	Email          null.String `json:"email"`
	Password       null.String `json:"password"`
	ContactDetails null.String `json:"contact_details"`
	CompanyName    null.String `json:"companyName"`
	Industry       null.String `json:"industry"`
	Role           null.String `json:"role"`
}
