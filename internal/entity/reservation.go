package entity

import "time"

// Reservation books a property for a guest between two dates.
type Reservation struct {
	ID         int64     `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
}

// ReservationDetail pairs a reservation with the property it books.
type ReservationDetail struct {
	Reservation Reservation `json:"reservation"`
	Property    Property    `json:"property"`
}
