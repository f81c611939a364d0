package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"tours/internal/entities"
)

type PackageFilter struct {
	Destination string
	Featured    *bool
	Active      *bool
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	Search      string
}

type EventFilter struct {
	Location string
	Active   *bool
	DateFrom *time.Time
	DateTo   *time.Time
	Search   string
}

type AvailabilityFilter struct {
	PackageID *int64
	EventID   *int64
	From      *entities.Date
	To        *entities.Date
}

type BookingFilter struct {
	UserID string
	Status entities.BookingStatus
}

type ReviewFilter struct {
	PackageID *int64
	EventID   *int64
}

type ContactQueryFilter struct {
	Status     entities.ContactQueryStatus
	Priority   entities.Priority
	AssignedTo string
}

type CustomerFilter struct {
	Status       string
	CustomerType string
	AssignedTo   string
	Search       string
}

type LeadFilter struct {
	Status     string
	Priority   entities.Priority
	Source     string
	AssignedTo string
	Search     string
}

type OpportunityFilter struct {
	Stage      string
	AssignedTo string
	CustomerID *int64
}

type TaskFilter struct {
	Status     string
	Priority   entities.Priority
	AssignedTo string
}

type EmailTemplateFilter struct {
	Category string
	Active   *bool
}

type EmailCampaignFilter struct {
	Status string
}
