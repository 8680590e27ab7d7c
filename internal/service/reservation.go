package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/entity"
	"github.com/lightbnb/api/internal/repository"
)

// ReservationService records and lists guest reservations.
type ReservationService struct {
	repo     repository.ReservationsRepository
	validate *validator.Validate
}

// NewReservationService creates a new instance of ReservationService.
func NewReservationService(repo repository.ReservationsRepository) *ReservationService {
	return &ReservationService{repo: repo, validate: newValidator()}
}

// ListForGuest returns up to limit reservations for the guest, earliest end date first.
// A zero limit means repository.DefaultReservationLimit.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]entity.ReservationDetail, error) {
	if err := checkID("guest_id", guestID); err != nil {
		return nil, err
	}
	limit, err := normalizeLimit(limit, repository.DefaultReservationLimit)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForGuest(ctx, guestID, limit)
}

// AddReservation books a property for a guest.
func (s *ReservationService) AddReservation(ctx context.Context, req dto.AddReservationRequest) (*entity.Reservation, error) {
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &entity.Reservation{
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		PropertyID: req.PropertyID,
		GuestID:    req.GuestID,
	})
}
