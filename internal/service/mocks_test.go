package service

import (
	"context"
	"errors"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/entity"
)

type mockUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	findByID    func(ctx context.Context, id int64) (*entity.User, error)
	create      func(ctx context.Context, name, email, passwordHash string) (*entity.User, error)
}

func (m *mockUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("findByEmail not implemented")
}

func (m *mockUsersRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("FindByID not implemented")
}

func (m *mockUsersRepository) Create(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, name, email, passwordHash)
	}
	return nil, errors.New("create not implemented")
}

type mockReservationsRepository struct {
	listForGuest func(ctx context.Context, guestID int64, limit int) ([]entity.ReservationDetail, error)
	create       func(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error)
}

func (m *mockReservationsRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]entity.ReservationDetail, error) {
	if m.listForGuest != nil {
		return m.listForGuest(ctx, guestID, limit)
	}
	return nil, errors.New("ListForGuest not implemented")
}

func (m *mockReservationsRepository) Create(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error) {
	if m.create != nil {
		return m.create(ctx, reservation)
	}
	return nil, errors.New("create not implemented")
}

type mockPropertiesRepository struct {
	search func(ctx context.Context, criteria dto.PropertySearch, limit int) ([]entity.PropertyListing, error)
}

func (m *mockPropertiesRepository) Search(ctx context.Context, criteria dto.PropertySearch, limit int) ([]entity.PropertyListing, error) {
	if m.search != nil {
		return m.search(ctx, criteria, limit)
	}
	return nil, errors.New("search not implemented")
}

type mockPropertyWriter struct {
	create func(ctx context.Context, property *entity.Property) (*entity.Property, error)
}

func (m *mockPropertyWriter) Create(ctx context.Context, property *entity.Property) (*entity.Property, error) {
	if m.create != nil {
		return m.create(ctx, property)
	}
	return nil, errors.New("create not implemented")
}

func stringPtr(v string) *string    { return &v }
func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }
