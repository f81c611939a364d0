package entities

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingFailed    BookingStatus = "failed"
)

func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingFailed
}

type BookingPaymentStatus string

const (
	BookingUnpaid        BookingPaymentStatus = "pending"
	BookingPaid          BookingPaymentStatus = "paid"
	BookingPaymentFailed BookingPaymentStatus = "failed"
)

type TargetKind string

const (
	TargetPackage TargetKind = "package"
	TargetEvent   TargetKind = "event"
)

// BookingTarget is what a booking, review or availability row refers to: a tour
// package or an event, never both.
type BookingTarget struct {
	Kind TargetKind `json:"kind"`
	ID   int64      `json:"id"`
}

func PackageTarget(id int64) BookingTarget {
	return BookingTarget{Kind: TargetPackage, ID: id}
}

func EventTarget(id int64) BookingTarget {
	return BookingTarget{Kind: TargetEvent, ID: id}
}

// NewBookingTarget accepts the two nullable wire fields and requires exactly one.
func NewBookingTarget(packageID, eventID *int64) (BookingTarget, error) {
	switch {
	case packageID != nil && eventID == nil:
		return PackageTarget(*packageID), nil
	case eventID != nil && packageID == nil:
		return EventTarget(*eventID), nil
	}

	return BookingTarget{}, ErrInvalidTarget
}

func (t BookingTarget) PackageID() *int64 {
	if t.Kind != TargetPackage {
		return nil
	}
	id := t.ID
	return &id
}

func (t BookingTarget) EventID() *int64 {
	if t.Kind != TargetEvent {
		return nil
	}
	id := t.ID
	return &id
}

func (t BookingTarget) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

type Booking struct {
	ID              int64                `db:"id" json:"id"`
	UserID          string               `db:"user_id" json:"userId"`
	PackageID       *int64               `db:"package_id" json:"packageId,omitempty"`
	EventID         *int64               `db:"event_id" json:"eventId,omitempty"`
	TravelDate      *Date                `db:"travel_date" json:"travelDate,omitempty"`
	Adults          int                  `db:"adults" json:"adults"`
	Children        int                  `db:"children" json:"children"`
	ContactName     string               `db:"contact_name" json:"contactName"`
	ContactEmail    string               `db:"contact_email" json:"contactEmail"`
	ContactPhone    string               `db:"contact_phone" json:"contactPhone"`
	HotelCategory   HotelCategory        `db:"hotel_category" json:"hotelCategory"`
	FlightIncluded  bool                 `db:"flight_included" json:"flightIncluded"`
	TotalAmount     decimal.Decimal      `db:"total_amount" json:"totalAmount"`
	Currency        string               `db:"currency" json:"currency"`
	Status          BookingStatus        `db:"status" json:"status"`
	PaymentStatus   BookingPaymentStatus `db:"payment_status" json:"paymentStatus"`
	OrderID         *string              `db:"order_id" json:"orderId,omitempty"`
	PaymentID       *string              `db:"payment_id" json:"paymentId,omitempty"`
	SpecialRequests string               `db:"special_requests" json:"specialRequests"`
	CreatedAt       time.Time            `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time            `db:"updated_at" json:"updatedAt"`

	Travelers []Traveler `db:"-" json:"travelers,omitempty"`
}

func (b Booking) Target() BookingTarget {
	if b.EventID != nil {
		return EventTarget(*b.EventID)
	}
	if b.PackageID != nil {
		return PackageTarget(*b.PackageID)
	}

	return BookingTarget{}
}

type TravelerType string

const (
	TravelerAdult TravelerType = "adult"
	TravelerChild TravelerType = "child"
)

type Traveler struct {
	ID                    int64        `db:"id" json:"id"`
	BookingID             int64        `db:"booking_id" json:"bookingId"`
	Type                  TravelerType `db:"type" json:"type"`
	FirstName             string       `db:"first_name" json:"firstName"`
	LastName              string       `db:"last_name" json:"lastName"`
	DateOfBirth           *Date        `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	Gender                string       `db:"gender" json:"gender"`
	Nationality           string       `db:"nationality" json:"nationality"`
	PassportNumber        string       `db:"passport_number" json:"passportNumber"`
	PassportExpiry        *Date        `db:"passport_expiry" json:"passportExpiry,omitempty"`
	DietaryRequirements   string       `db:"dietary_requirements" json:"dietaryRequirements"`
	MedicalConditions     string       `db:"medical_conditions" json:"medicalConditions"`
	EmergencyContactName  string       `db:"emergency_contact_name" json:"emergencyContactName"`
	EmergencyContactPhone string       `db:"emergency_contact_phone" json:"emergencyContactPhone"`
	SpecialRequests       string       `db:"special_requests" json:"specialRequests"`
	CreatedAt             time.Time    `db:"created_at" json:"createdAt"`
}

// BookingDraft is the client-side booking before payment. It is persisted with the
// gateway order so the confirmation step never trusts the client twice.
type BookingDraft struct {
	PackageID       *int64        `json:"packageId,omitempty"`
	EventID         *int64        `json:"eventId,omitempty"`
	TravelDate      *Date         `json:"travelDate,omitempty"`
	Adults          int           `json:"adults"`
	Children        int           `json:"children"`
	ContactName     string        `json:"contactName"`
	ContactEmail    string        `json:"contactEmail"`
	ContactPhone    string        `json:"contactPhone"`
	HotelCategory   HotelCategory `json:"hotelCategory"`
	FlightIncluded  bool          `json:"flightIncluded"`
	SpecialRequests string        `json:"specialRequests"`
	Travelers       []Traveler    `json:"travelers"`
}

func (d BookingDraft) Target() (BookingTarget, error) {
	return NewBookingTarget(d.PackageID, d.EventID)
}

func (d BookingDraft) Slots() int {
	return d.Adults + d.Children
}

func (d BookingDraft) Value() (driver.Value, error) {
	return jsonValue(d)
}

func (d *BookingDraft) Scan(src any) error {
	return scanJSON(src, d)
}
