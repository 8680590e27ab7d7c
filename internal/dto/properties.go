package dto

// DefaultSearchLimit bounds property searches when the caller gives no limit.
const DefaultSearchLimit = 10

// MaxColumnInt is the largest value a PostgreSQL integer column holds.
// Identifiers, prices, counts and limits above it are rejected as input errors.
const MaxColumnInt = 2147483647

// PropertySearch holds the optional criteria for a property search.
// Prices share the unit of properties.cost_per_night.
type PropertySearch struct {
	OwnerID              *int64   `json:"owner_id,omitempty" validate:"omitempty,gt=0,lte=2147483647"`
	City                 *string  `json:"city,omitempty" validate:"omitempty,max=255"`
	MinimumPricePerNight *int64   `json:"minimum_price_per_night,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
	MaximumPricePerNight *int64   `json:"maximum_price_per_night,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
	MinimumRating        *float64 `json:"minimum_rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// AddPropertyRequest carries the fields of a new listing.
type AddPropertyRequest struct {
	OwnerID           int64   `json:"owner_id" validate:"required,gt=0,lte=2147483647"`
	Title             string  `json:"title" validate:"required,max=255"`
	Description       *string `json:"description,omitempty"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url" validate:"required,url"`
	CoverPhotoURL     string  `json:"cover_photo_url" validate:"required,url"`
	CostPerNight      int64   `json:"cost_per_night" validate:"gte=0,lte=2147483647"`
	ParkingSpaces     int     `json:"parking_spaces" validate:"gte=0,lte=2147483647"`
	NumberOfBathrooms int     `json:"number_of_bathrooms" validate:"gte=0,lte=2147483647"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms" validate:"gte=0,lte=2147483647"`
	Country           string  `json:"country" validate:"required"`
	Street            string  `json:"street" validate:"required"`
	City              string  `json:"city" validate:"required"`
	Province          string  `json:"province" validate:"required"`
	PostCode          string  `json:"post_code" validate:"required"`
}
