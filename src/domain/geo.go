package domain

// GeoLocation represents a geocoding candidate for a city query
type GeoLocation struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	LocalName *string `json:"localName"`
}

// DisplayName ローカル名があれば「ローカル名 (Name, Country)」形式で返す
func (g GeoLocation) DisplayName() string {
	if g.LocalName != nil && *g.LocalName != "" {
		return *g.LocalName + " (" + g.Name + ", " + g.Country + ")"
	}
	return g.Name + ", " + g.Country
}
