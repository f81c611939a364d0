package entities

import "time"

type Review struct {
	ID        int64      `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	PackageID *int64     `db:"package_id" json:"packageId,omitempty"`
	EventID   *int64     `db:"event_id" json:"eventId,omitempty"`
	Rating    int        `db:"rating" json:"rating"`
	Title     string     `db:"title" json:"title"`
	Comment   string     `db:"comment" json:"comment"`
	Images    StringList `db:"images" json:"images"`
	Helpful   int        `db:"helpful" json:"helpful"`
	Verified  bool       `db:"verified" json:"verified"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

func (r Review) Target() (BookingTarget, error) {
	return NewBookingTarget(r.PackageID, r.EventID)
}

type Translation struct {
	ID         int64     `db:"id" json:"id"`
	EntityType string    `db:"entity_type" json:"entityType"`
	EntityID   int64     `db:"entity_id" json:"entityId"`
	Language   string    `db:"language" json:"language"`
	Field      string    `db:"field" json:"field"`
	Value      string    `db:"value" json:"value"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

type NewsletterSubscription struct {
	ID             int64      `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	Subscribed     bool       `db:"subscribed" json:"subscribed"`
	SubscribedAt   time.Time  `db:"subscribed_at" json:"subscribedAt"`
	UnsubscribedAt *time.Time `db:"unsubscribed_at" json:"unsubscribedAt,omitempty"`
}

type ContactQueryStatus string

const (
	QueryNew        ContactQueryStatus = "new"
	QueryInProgress ContactQueryStatus = "in_progress"
	QueryResolved   ContactQueryStatus = "resolved"
	QueryClosed     ContactQueryStatus = "closed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type ContactQuery struct {
	ID          int64              `db:"id" json:"id"`
	Name        string             `db:"name" json:"name"`
	Email       string             `db:"email" json:"email"`
	Phone       string             `db:"phone" json:"phone"`
	Subject     string             `db:"subject" json:"subject"`
	Message     string             `db:"message" json:"message"`
	Status      ContactQueryStatus `db:"status" json:"status"`
	Priority    Priority           `db:"priority" json:"priority"`
	AssignedTo  *string            `db:"assigned_to" json:"assignedTo,omitempty"`
	Response    *string            `db:"response" json:"response,omitempty"`
	RespondedAt *time.Time         `db:"responded_at" json:"respondedAt,omitempty"`
	CreatedAt   time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `db:"updated_at" json:"updatedAt"`
}

type DashboardStats struct {
	TotalPackages     int `db:"total_packages" json:"totalPackages"`
	ActivePackages    int `db:"active_packages" json:"activePackages"`
	TotalEvents       int `db:"total_events" json:"totalEvents"`
	ActiveEvents      int `db:"active_events" json:"activeEvents"`
	TotalBookings     int `db:"total_bookings" json:"totalBookings"`
	PendingBookings   int `db:"pending_bookings" json:"pendingBookings"`
	ConfirmedBookings int `db:"confirmed_bookings" json:"confirmedBookings"`
	TotalQueries      int `db:"total_queries" json:"totalQueries"`
	NewQueries        int `db:"new_queries" json:"newQueries"`
	UrgentQueries     int `db:"urgent_queries" json:"urgentQueries"`
	TotalUsers        int `db:"total_users" json:"totalUsers"`
	NewsletterSubs    int `db:"newsletter_subscribers" json:"newsletterSubscribers"`
}

// Email is one outgoing HTML message.
type Email struct {
	To      []string
	Subject string
	HTML    string
}
