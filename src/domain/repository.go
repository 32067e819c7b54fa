package domain

import "context"

// CommentRepository defines data access to the remote comment API
type CommentRepository interface {
	List(ctx context.Context, page int, filter CommentFilter) (*CommentPage, error)
	GetByID(ctx context.Context, id int) (*Comment, error)
	Create(ctx context.Context, req CreateCommentRequest) (*Comment, error)
	Delete(ctx context.Context, id int) error
	VerifyPassword(ctx context.Context, id int, password string) (bool, error)
}

// TripRepository defines data access to the remote geocoding / planning APIs
type TripRepository interface {
	Geocode(ctx context.Context, query string) ([]GeoLocation, error)
	ClothRecommendations(ctx context.Context, place, start, end string) ([]ClothRecommendation, error)
	Weather(ctx context.Context, location, start, end string, lat, lon float64) ([]WeatherInfo, error)
}
