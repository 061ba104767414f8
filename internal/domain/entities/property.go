package entities

// Property represents a row in the properties table.
//
// Every column other than ID is a pointer: on insert a nil field is left to
// the store default, on read a nil field is a NULL column.
type Property struct {
	ID                int64   `json:"id" db:"id"`
	OwnerID           *int64  `json:"owner_id,omitempty" db:"owner_id"`
	Title             *string `json:"title,omitempty" db:"title"`
	Description       *string `json:"description,omitempty" db:"description"`
	ThumbnailPhotoURL *string `json:"thumbnail_photo_url,omitempty" db:"thumbnail_photo_url"`
	CoverPhotoURL     *string `json:"cover_photo_url,omitempty" db:"cover_photo_url"`
	CostPerNight      *int64  `json:"cost_per_night,omitempty" db:"cost_per_night"` // cents
	Street            *string `json:"street,omitempty" db:"street"`
	City              *string `json:"city,omitempty" db:"city"`
	Province          *string `json:"province,omitempty" db:"province"`
	PostCode          *string `json:"post_code,omitempty" db:"post_code"`
	Country           *string `json:"country,omitempty" db:"country"`
	ParkingSpaces     *int    `json:"parking_spaces,omitempty" db:"parking_spaces"`
	NumberOfBathrooms *int    `json:"number_of_bathrooms,omitempty" db:"number_of_bathrooms"`
	NumberOfBedrooms  *int    `json:"number_of_bedrooms,omitempty" db:"number_of_bedrooms"`
	Active            *bool   `json:"active,omitempty" db:"active"`
}

// PropertyListing is a property returned by search, with the mean of its review ratings.
type PropertyListing struct {
	Property
	AverageRating float64 `json:"average_rating" db:"average_rating"`
}
