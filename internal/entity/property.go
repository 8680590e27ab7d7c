package entity

// Property is a rental listing owned by a user.
type Property struct {
	ID                int64   `json:"id"`
	OwnerID           int64   `json:"owner_id"`
	Title             string  `json:"title"`
	Description       *string `json:"description,omitempty"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url"`
	CostPerNight      int64   `json:"cost_per_night"`
	ParkingSpaces     int     `json:"parking_spaces"`
	NumberOfBathrooms int     `json:"number_of_bathrooms"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms"`
	Country           string  `json:"country"`
	Street            string  `json:"street"`
	City              string  `json:"city"`
	Province          string  `json:"province"`
	PostCode          string  `json:"post_code"`
	Active            bool    `json:"active"`
}

// PropertyListing is a property returned by search with its review average.
// AverageRating is computed per query and is zero for unreviewed properties.
type PropertyListing struct {
	Property
	AverageRating float64 `json:"average_rating"`
}
