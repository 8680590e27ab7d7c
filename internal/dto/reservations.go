package dto

import "time"

// AddReservationRequest books a property for a guest.
type AddReservationRequest struct {
	PropertyID int64     `json:"property_id" validate:"required,gt=0,lte=2147483647"`
	GuestID    int64     `json:"guest_id" validate:"required,gt=0,lte=2147483647"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}
