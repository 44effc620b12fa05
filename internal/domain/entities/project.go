package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ProjectStatus values a campaign moves through
const (
	ProjectStatusPending  = "pending"
	ProjectStatusApproved = "approved"
	ProjectStatusRejected = "rejected"
	ProjectStatusClosed   = "closed"
)

// Project represents a fundraising campaign
type Project struct {
	ID                  uint        `json:"id"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	TargetAmount        float64     `json:"targetAmount"`
	FundsRaised         float64     `json:"fundsRaised"`
	ImageURL            null.String `json:"-"`
	PDFDocumentPath     null.String `json:"-"`
	FounderID           uint        `json:"founderId"`
	Deadline            time.Time   `json:"deadline"`
	FundingType         null.String `json:"fundingType,omitempty"`
	MinInvestment       float64     `json:"minInvestment"`
	ContactEmail        null.String `json:"email,omitempty"`
	Address             null.String `json:"address,omitempty"`
	Phone               null.String `json:"phone,omitempty"`
	PersonalizedMessage null.String `json:"personalizedMessage,omitempty"`
	MotivationLetter    null.String `json:"motivationLetter,omitempty"`
	Category            null.String `json:"category,omitempty"`
	Status              string      `json:"status"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

// CreateProjectInput carries the multipart form fields of a campaign
// submission. The two file parts are handled separately by the handler.
type CreateProjectInput struct {
	CampaignTitle       string  `form:"campaignTitle" binding:"required"`
	CampaignDescription string  `form:"campaignDescription" binding:"required"`
	CampaignCategory    string  `form:"campaignCategory" binding:"required"`
	TargetAmount        float64 `form:"targetAmount" binding:"required"`
	FundingType         string  `form:"fundingType" binding:"required"`
	Deadline            string  `form:"deadline" binding:"required"`
	MinInvestment       float64 `form:"minInvestment"`
	Email               string  `form:"email" binding:"required"`
	Address             string  `form:"address" binding:"required"`
	Phone               string  `form:"phone" binding:"required"`
	PersonalizedMessage string  `form:"personalizedMessage"`
	MotivationLetter    string  `form:"motivationLetter"`
}

// UpdateProjectInput represents a partial campaign update. Only name,
// description, target amount, image URL and status are mutable here.
type UpdateProjectInput struct {
	Name         null.String  `json:"name"`
	Description  null.String  `json:"description"`
	TargetAmount null.Float64 `json:"target_amount"`
	ImageURL     null.String  `json:"image_url"`
	Status       null.String  `json:"status"`
}

// ProjectView is the read shape of a campaign: stored fields plus
// values derived at read time.
type ProjectView struct {
	Project
	InvestorCount   int64   `json:"investorCount"`
	DaysRemaining   int     `json:"daysRemaining"`
	ProgressPercent float64 `json:"progressPercent"`
	ImageFileURL    string  `json:"image_url,omitempty"`
	DocumentFileURL string  `json:"proof_file_url,omitempty"`
}
