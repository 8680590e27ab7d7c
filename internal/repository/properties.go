package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lightbnb/api/internal/dto"
	"github.com/lightbnb/api/internal/entity"
	"github.com/lightbnb/api/internal/sqlbuilder"
)

// PropertiesRepository describes read operations for property listings.
type PropertiesRepository interface {
	Search(ctx context.Context, criteria dto.PropertySearch, limit int) ([]entity.PropertyListing, error)
}

// PropertyWriter stores new properties and assigns their identifier.
type PropertyWriter interface {
	Create(ctx context.Context, property *entity.Property) (*entity.Property, error)
}

// PGXPropertiesRepository implements PropertiesRepository and PropertyWriter using pgx.
type PGXPropertiesRepository struct {
	pool pgxPool
}

// NewPGXPropertiesRepository wires a pgx backed repository.
func NewPGXPropertiesRepository(pool *pgxpool.Pool) *PGXPropertiesRepository {
	return &PGXPropertiesRepository{pool: pool}
}

const propertyColumns = `
            properties.id,
            properties.owner_id,
            properties.title,
            properties.description,
            properties.thumbnail_photo_url,
            properties.cover_photo_url,
            properties.cost_per_night,
            properties.parking_spaces,
            properties.number_of_bathrooms,
            properties.number_of_bedrooms,
            properties.country,
            properties.street,
            properties.city,
            properties.province,
            properties.post_code,
            properties.active`

const propertySearchBase = `
        SELECT` + propertyColumns + `,
            COALESCE(AVG(property_reviews.rating), 0)::float8 AS average_rating
        FROM properties
        LEFT JOIN property_reviews ON properties.id = property_reviews.property_id
        WHERE true`

const averageRatingExpr = `COALESCE(AVG(property_reviews.rating), 0)`

// predicate is one filter clause and the values its markers bind, in order.
type predicate struct {
	clause string
	values []any
}

type propertyFilter func(criteria dto.PropertySearch) (predicate, bool)

// propertyRowFilters run before grouping, in this order.
var propertyRowFilters = []propertyFilter{
	ownerFilter,
	cityFilter,
	priceFilter,
}

func ownerFilter(c dto.PropertySearch) (predicate, bool) {
	if c.OwnerID == nil {
		return predicate{}, false
	}
	return predicate{clause: "properties.owner_id = ?", values: []any{*c.OwnerID}}, true
}

func cityFilter(c dto.PropertySearch) (predicate, bool) {
	if c.City == nil || *c.City == "" {
		return predicate{}, false
	}
	return predicate{clause: "properties.city ILIKE ?", values: []any{sqlbuilder.Contains(*c.City)}}, true
}

func priceFilter(c dto.PropertySearch) (predicate, bool) {
	switch {
	case c.MinimumPricePerNight != nil && c.MaximumPricePerNight != nil:
		return predicate{
			clause: "properties.cost_per_night BETWEEN ? AND ?",
			values: []any{*c.MinimumPricePerNight, *c.MaximumPricePerNight},
		}, true
	case c.MinimumPricePerNight != nil:
		return predicate{clause: "properties.cost_per_night >= ?", values: []any{*c.MinimumPricePerNight}}, true
	case c.MaximumPricePerNight != nil:
		return predicate{clause: "properties.cost_per_night <= ?", values: []any{*c.MaximumPricePerNight}}, true
	}
	return predicate{}, false
}

// ratingFilter constrains the aggregate, so it belongs in HAVING.
func ratingFilter(c dto.PropertySearch) (predicate, bool) {
	if c.MinimumRating == nil {
		return predicate{}, false
	}
	return predicate{clause: averageRatingExpr + " >= ?", values: []any{*c.MinimumRating}}, true
}

// buildPropertySearch assembles the search statement and its arguments.
func buildPropertySearch(criteria dto.PropertySearch, limit int) (string, []any, error) {
	if limit <= 0 {
		limit = dto.DefaultSearchLimit
	}

	q := sqlbuilder.New(propertySearchBase)
	for _, filter := range propertyRowFilters {
		p, ok := filter(criteria)
		if !ok {
			continue
		}
		if err := q.Clause("\n        AND "+p.clause, p.values...); err != nil {
			return "", nil, err
		}
	}

	q.Write("\n        GROUP BY properties.id")

	if p, ok := ratingFilter(criteria); ok {
		if err := q.Clause("\n        HAVING "+p.clause, p.values...); err != nil {
			return "", nil, err
		}
	}

	if err := q.Clause("\n        ORDER BY properties.cost_per_night ASC, properties.id ASC\n        LIMIT ?", limit); err != nil {
		return "", nil, err
	}

	return q.SQL(), q.Args(), nil
}

// Search returns properties matching every present criterion, cheapest first.
func (r *PGXPropertiesRepository) Search(ctx context.Context, criteria dto.PropertySearch, limit int) ([]entity.PropertyListing, error) {
	query, args, err := buildPropertySearch(criteria, limit)
	if err != nil {
		return nil, fmt.Errorf("build property search: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}
	defer rows.Close()

	return scanPropertyListings(rows)
}

// Create inserts a property and returns it with its assigned identifier.
func (r *PGXPropertiesRepository) Create(ctx context.Context, property *entity.Property) (*entity.Property, error) {
	if property == nil {
		return nil, fmt.Errorf("property payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO properties (
            owner_id,
            title,
            description,
            thumbnail_photo_url,
            cover_photo_url,
            cost_per_night,
            parking_spaces,
            number_of_bathrooms,
            number_of_bedrooms,
            country,
            street,
            city,
            province,
            post_code,
            active
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING`+propertyColumns,
		property.OwnerID,
		property.Title,
		stringOrNil(property.Description),
		property.ThumbnailPhotoURL,
		property.CoverPhotoURL,
		property.CostPerNight,
		property.ParkingSpaces,
		property.NumberOfBathrooms,
		property.NumberOfBedrooms,
		property.Country,
		property.Street,
		property.City,
		property.Province,
		property.PostCode,
		property.Active,
	)

	var (
		created     entity.Property
		description sql.NullString
	)
	if err := row.Scan(propertyDest(&created, &description)...); err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("%w: owner %d", ErrReferenceNotFound, property.OwnerID)
		case pgCheckViolation:
			return nil, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("insert property: %w", err)
	}
	created.Description = nullStringToPtr(description)
	return &created, nil
}

// propertyDest returns scan targets matching propertyColumns.
func propertyDest(p *entity.Property, description *sql.NullString) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Active,
	}
}

func scanPropertyListings(rows pgx.Rows) ([]entity.PropertyListing, error) {
	listings := make([]entity.PropertyListing, 0)
	for rows.Next() {
		var (
			listing     entity.PropertyListing
			description sql.NullString
		)
		dest := append(propertyDest(&listing.Property, &description), &listing.AverageRating)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		listing.Description = nullStringToPtr(description)
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}
	return listings, nil
}

func nullStringToPtr(value sql.NullString) *string {
	if value.Valid {
		val := value.String
		return &val
	}
	return nil
}

func stringOrNil(value *string) any {
	if value == nil {
		return nil
	}
	if *value == "" {
		return nil
	}
	return *value
}
