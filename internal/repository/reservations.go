package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lightbnb/api/internal/entity"
)

// ReservationsRepository declares persistence operations for reservations.
type ReservationsRepository interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]entity.ReservationDetail, error)
	Create(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error)
}

// DefaultReservationLimit bounds reservation listings when no limit is given.
const DefaultReservationLimit = 10

// PGXReservationsRepository implements ReservationsRepository with pgx.
type PGXReservationsRepository struct {
	pool pgxPool
}

// NewPGXReservationsRepository instantiates a reservations repository.
func NewPGXReservationsRepository(pool *pgxpool.Pool) *PGXReservationsRepository {
	return &PGXReservationsRepository{pool: pool}
}

const reservationColumns = `
            reservations.id,
            reservations.start_date,
            reservations.end_date,
            reservations.property_id,
            reservations.guest_id`

// ListForGuest returns a guest's reservations with their properties, ordered by end date.
func (r *PGXReservationsRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]entity.ReservationDetail, error) {
	if limit <= 0 {
		limit = DefaultReservationLimit
	}

	rows, err := r.pool.Query(ctx, `
        SELECT`+reservationColumns+`,`+propertyColumns+`
        FROM reservations
        JOIN properties ON properties.id = reservations.property_id
        WHERE reservations.guest_id = $1
        ORDER BY reservations.end_date
        LIMIT $2
    `, guestID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return scanReservationDetails(rows)
}

// Create records a reservation and returns it with its identifier.
func (r *PGXReservationsRepository) Create(ctx context.Context, reservation *entity.Reservation) (*entity.Reservation, error) {
	if reservation == nil {
		return nil, fmt.Errorf("reservation payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO reservations (start_date, end_date, property_id, guest_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, start_date, end_date, property_id, guest_id
    `, reservation.StartDate, reservation.EndDate, reservation.PropertyID, reservation.GuestID)

	var created entity.Reservation
	if err := row.Scan(&created.ID, &created.StartDate, &created.EndDate, &created.PropertyID, &created.GuestID); err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("%w: property %d or guest %d", ErrReferenceNotFound, reservation.PropertyID, reservation.GuestID)
		case pgCheckViolation:
			return nil, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("insert reservation: %w", err)
	}
	return &created, nil
}

func scanReservationDetails(rows pgx.Rows) ([]entity.ReservationDetail, error) {
	details := make([]entity.ReservationDetail, 0)
	for rows.Next() {
		var (
			d           entity.ReservationDetail
			description sql.NullString
		)
		dest := []any{
			&d.Reservation.ID,
			&d.Reservation.StartDate,
			&d.Reservation.EndDate,
			&d.Reservation.PropertyID,
			&d.Reservation.GuestID,
		}
		dest = append(dest, propertyDest(&d.Property, &description)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		d.Property.Description = nullStringToPtr(description)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservations: %w", err)
	}
	return details, nil
}
