package domain

// ClothCategory represents clothing recommendation categories
type ClothCategory string

const (
	CategoryCasualDaily  ClothCategory = "CASUAL_DAILY"
	CategoryFormalOffice ClothCategory = "FORMAL_OFFICE"
	CategoryOutdoor      ClothCategory = "OUTDOOR"
	CategoryDateLook     ClothCategory = "DATE_LOOK"
	CategoryExtra        ClothCategory = "EXTRA"
)

// IsValid validates if the category is valid
func (c ClothCategory) IsValid() bool {
	switch c {
	case CategoryCasualDaily, CategoryFormalOffice, CategoryOutdoor, CategoryDateLook, CategoryExtra:
		return true
	default:
		return false
	}
}

// String returns string representation of ClothCategory
func (c ClothCategory) String() string {
	return string(c)
}

// ClothRecommendation represents a single recommended clothing item
type ClothRecommendation struct {
	ClothName string        `json:"clothName"`
	ImageURL  string        `json:"imageUrl"`
	Category  ClothCategory `json:"category"`
}

// PlanRequest represents input for the trip-planning lookup
type PlanRequest struct {
	Place string
	Start string
	End   string
}

// PlanResult represents the joined output of the planning pipeline
type PlanResult struct {
	Location GeoLocation                             `json:"location"`
	Clothes  map[ClothCategory][]ClothRecommendation `json:"clothes"`
	Forecast []WeatherInfo                           `json:"forecast"`
}
