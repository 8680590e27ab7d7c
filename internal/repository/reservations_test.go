package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lightbnb/api/internal/entity"
)

func reservationDetailScan(id int64, end time.Time) func(dest ...any) error {
	return func(dest ...any) error {
		*dest[0].(*int64) = id
		*dest[1].(*time.Time) = end.AddDate(0, 0, -3)
		*dest[2].(*time.Time) = end
		*dest[3].(*int64) = 5
		*dest[4].(*int64) = 1
		return listingScan(5, 8000, "Montreal", 0)(append(dest[5:], new(float64))...)
	}
}

func TestPGXReservationsRepository_ListForGuest(t *testing.T) {
	end := time.Date(2026, 9, 26, 0, 0, 0, 0, time.UTC)
	var gotQuery string
	var gotArgs []any
	repo := &PGXReservationsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			gotQuery, gotArgs = query, args
			return &stubRows{scans: []func(dest ...any) error{reservationDetailScan(11, end)}}, nil
		},
	}}

	details, err := repo.ListForGuest(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 1 || details[0].Reservation.ID != 11 || details[0].Property.City != "Montreal" {
		t.Fatalf("unexpected details: %+v", details)
	}
	if !details[0].Reservation.EndDate.Equal(end) {
		t.Fatalf("unexpected end date: %v", details[0].Reservation.EndDate)
	}
	if !strings.Contains(gotQuery, "ORDER BY reservations.end_date") || !strings.Contains(gotQuery, "LIMIT $2") {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
	if len(gotArgs) != 2 || gotArgs[0] != int64(1) || gotArgs[1] != DefaultReservationLimit {
		t.Fatalf("unexpected args: %v", gotArgs)
	}
}

func TestPGXReservationsRepository_ListForGuestEmpty(t *testing.T) {
	repo := &PGXReservationsRepository{pool: &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return &stubRows{}, nil
		},
	}}

	details, err := repo.ListForGuest(context.Background(), 404, 10)
	if err != nil {
		t.Fatalf("expected no error for a guest without reservations, got %v", err)
	}
	if details == nil || len(details) != 0 {
		t.Fatalf("expected empty slice, got %#v", details)
	}

	repo.pool = &stubPool{
		queryFunc: func(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
			return nil, context.DeadlineExceeded
		},
	}
	if _, err := repo.ListForGuest(context.Background(), 404, 10); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped deadline error, got %v", err)
	}
}

func TestPGXReservationsRepository_Create(t *testing.T) {
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 4)
	repo := &PGXReservationsRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			if len(args) != 4 {
				t.Fatalf("unexpected args: %v", args)
			}
			return &stubRow{scan: func(dest ...any) error {
				*dest[0].(*int64) = 77
				*dest[1].(*time.Time) = start
				*dest[2].(*time.Time) = end
				*dest[3].(*int64) = 3
				*dest[4].(*int64) = 2
				return nil
			}}
		},
	}}

	created, err := repo.Create(context.Background(), &entity.Reservation{StartDate: start, EndDate: end, PropertyID: 3, GuestID: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 77 || created.PropertyID != 3 {
		t.Fatalf("unexpected reservation: %+v", created)
	}

	repo.pool = &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error {
				return &pgconn.PgError{Code: "23503"}
			}}
		},
	}
	if _, err := repo.Create(context.Background(), &entity.Reservation{PropertyID: 999, GuestID: 2}); !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}

	repo.pool = &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error {
				return &pgconn.PgError{Code: "23514", Message: "end_date must follow start_date"}
			}}
		},
	}
	if _, err := repo.Create(context.Background(), &entity.Reservation{PropertyID: 3, GuestID: 2}); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}

