package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Availability struct {
	ID          int64               `db:"id" json:"id"`
	PackageID   *int64              `db:"package_id" json:"packageId,omitempty"`
	EventID     *int64              `db:"event_id" json:"eventId,omitempty"`
	Date        Date                `db:"date" json:"date"`
	TotalSlots  int                 `db:"total_slots" json:"totalSlots"`
	BookedSlots int                 `db:"booked_slots" json:"bookedSlots"`
	Price       decimal.NullDecimal `db:"price" json:"price"`
	Active      bool                `db:"active" json:"active"`
	CreatedAt   time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time           `db:"updated_at" json:"updatedAt"`
}

func (a Availability) Remaining() int {
	return a.TotalSlots - a.BookedSlots
}
