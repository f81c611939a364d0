package entities

import (
	"database/sql/driver"
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID              int64           `db:"id" json:"id"`
	UserID          *string         `db:"user_id" json:"userId,omitempty"`
	Email           string          `db:"email" json:"email"`
	FirstName       string          `db:"first_name" json:"firstName"`
	LastName        string          `db:"last_name" json:"lastName"`
	Phone           string          `db:"phone" json:"phone"`
	Company         string          `db:"company" json:"company"`
	CustomerType    string          `db:"customer_type" json:"customerType"`
	Status          string          `db:"status" json:"status"`
	Source          string          `db:"source" json:"source"`
	Tags            StringList      `db:"tags" json:"tags"`
	Notes           string          `db:"notes" json:"notes"`
	AssignedTo      *string         `db:"assigned_to" json:"assignedTo,omitempty"`
	TotalSpent      decimal.Decimal `db:"total_spent" json:"totalSpent"`
	TotalBookings   int             `db:"total_bookings" json:"totalBookings"`
	LastBookingDate *time.Time      `db:"last_booking_date" json:"lastBookingDate,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updatedAt"`
}

type CustomerInteraction struct {
	ID              int64     `db:"id" json:"id"`
	CustomerID      int64     `db:"customer_id" json:"customerId"`
	InteractionType string    `db:"interaction_type" json:"interactionType"`
	Subject         string    `db:"subject" json:"subject"`
	Description     string    `db:"description" json:"description"`
	BookingID       *int64    `db:"booking_id" json:"bookingId,omitempty"`
	CreatedBy       *string   `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type Lead struct {
	ID                  int64               `db:"id" json:"id"`
	FirstName           string              `db:"first_name" json:"firstName"`
	LastName            string              `db:"last_name" json:"lastName"`
	Email               string              `db:"email" json:"email"`
	Phone               string              `db:"phone" json:"phone"`
	Company             string              `db:"company" json:"company"`
	Source              string              `db:"source" json:"source"`
	Status              string              `db:"status" json:"status"`
	Priority            Priority            `db:"priority" json:"priority"`
	InterestedIn        string              `db:"interested_in" json:"interestedIn"`
	Budget              decimal.NullDecimal `db:"budget" json:"budget"`
	TravelDate          *Date               `db:"travel_date" json:"travelDate,omitempty"`
	Notes               string              `db:"notes" json:"notes"`
	AssignedTo          *string             `db:"assigned_to" json:"assignedTo,omitempty"`
	ConvertedCustomerID *int64              `db:"converted_customer_id" json:"convertedCustomerId,omitempty"`
	CreatedAt           time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time           `db:"updated_at" json:"updatedAt"`
}

type LeadActivity struct {
	ID           int64      `db:"id" json:"id"`
	LeadID       int64      `db:"lead_id" json:"leadId"`
	ActivityType string     `db:"activity_type" json:"activityType"`
	Subject      string     `db:"subject" json:"subject"`
	Description  string     `db:"description" json:"description"`
	Outcome      string     `db:"outcome" json:"outcome"`
	ScheduledAt  *time.Time `db:"scheduled_at" json:"scheduledAt,omitempty"`
	CompletedAt  *time.Time `db:"completed_at" json:"completedAt,omitempty"`
	CreatedBy    *string    `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

type Opportunity struct {
	ID                int64           `db:"id" json:"id"`
	CustomerID        *int64          `db:"customer_id" json:"customerId,omitempty"`
	LeadID            *int64          `db:"lead_id" json:"leadId,omitempty"`
	Title             string          `db:"title" json:"title"`
	Description       string          `db:"description" json:"description"`
	Value             decimal.Decimal `db:"value" json:"value"`
	Stage             string          `db:"stage" json:"stage"`
	Probability       int             `db:"probability" json:"probability"`
	ExpectedCloseDate *Date           `db:"expected_close_date" json:"expectedCloseDate,omitempty"`
	AssignedTo        *string         `db:"assigned_to" json:"assignedTo,omitempty"`
	CreatedAt         time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updatedAt"`
}

type Task struct {
	ID                   int64      `db:"id" json:"id"`
	Title                string     `db:"title" json:"title"`
	Description          string     `db:"description" json:"description"`
	TaskType             string     `db:"task_type" json:"taskType"`
	Priority             Priority   `db:"priority" json:"priority"`
	Status               string     `db:"status" json:"status"`
	DueDate              *time.Time `db:"due_date" json:"dueDate,omitempty"`
	AssignedTo           *string    `db:"assigned_to" json:"assignedTo,omitempty"`
	RelatedCustomerID    *int64     `db:"related_customer_id" json:"relatedCustomerId,omitempty"`
	RelatedLeadID        *int64     `db:"related_lead_id" json:"relatedLeadId,omitempty"`
	RelatedOpportunityID *int64     `db:"related_opportunity_id" json:"relatedOpportunityId,omitempty"`
	CompletedAt          *time.Time `db:"completed_at" json:"completedAt,omitempty"`
	CreatedBy            *string    `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt            time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updatedAt"`
}

type EmailTemplate struct {
	ID        int64      `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Subject   string     `db:"subject" json:"subject"`
	Content   string     `db:"content" json:"content"`
	Category  string     `db:"category" json:"category"`
	Variables StringList `db:"variables" json:"variables"`
	Active    bool       `db:"active" json:"active"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}

const (
	CampaignDraft     = "draft"
	CampaignScheduled = "scheduled"
	CampaignSending   = "sending"
	CampaignSent      = "sent"
	CampaignFailed    = "failed"
)

// CampaignAudience selects campaign recipients. Empty lists match everything.
type CampaignAudience struct {
	CustomerTypes     []string `json:"customerTypes,omitempty"`
	Statuses          []string `json:"statuses,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	IncludeNewsletter bool     `json:"includeNewsletter"`
}

func (a CampaignAudience) Value() (driver.Value, error) {
	return jsonValue(a)
}

func (a *CampaignAudience) Scan(src any) error {
	return scanJSON(src, a)
}

type EmailCampaign struct {
	ID             int64            `db:"id" json:"id"`
	Name           string           `db:"name" json:"name"`
	Subject        string           `db:"subject" json:"subject"`
	Content        string           `db:"content" json:"content"`
	TemplateID     *int64           `db:"template_id" json:"templateId,omitempty"`
	TargetAudience CampaignAudience `db:"target_audience" json:"targetAudience"`
	Status         string           `db:"status" json:"status"`
	ScheduledAt    *time.Time       `db:"scheduled_at" json:"scheduledAt,omitempty"`
	SentAt         *time.Time       `db:"sent_at" json:"sentAt,omitempty"`
	SentCount      int              `db:"sent_count" json:"sentCount"`
	FailedCount    int              `db:"failed_count" json:"failedCount"`
	CreatedBy      *string          `db:"created_by" json:"createdBy,omitempty"`
	CreatedAt      time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time        `db:"updated_at" json:"updatedAt"`
}

// Recipient is one resolved campaign address with the values available to
// placeholders.
type Recipient struct {
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}
