package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"wearlog/src/domain"
)

// TripAPI implements domain.TripRepository over the remote REST API
type TripAPI struct {
	client *Client
}

// NewTripAPI creates a trip repository backed by the remote API
func NewTripAPI(client *Client) domain.TripRepository {
	return &TripAPI{client: client}
}

// fallbackCities はジオコーダが落ちている場合の候補リスト
var fallbackCities = []domain.GeoLocation{
	{Name: "Seoul", Country: "KR", Lat: 37.5665, Lon: 126.9780, LocalName: strPtr("서울")},
	{Name: "Busan", Country: "KR", Lat: 35.1796, Lon: 129.0756, LocalName: strPtr("부산")},
	{Name: "Tokyo", Country: "JP", Lat: 35.6895, Lon: 139.6917, LocalName: strPtr("東京")},
	{Name: "New York", Country: "US", Lat: 40.7128, Lon: -74.0060, LocalName: nil},
}

func strPtr(s string) *string {
	return &s
}

// Geocode resolves a city query into location candidates.
// ネットワーク障害時のみ組み込みの都市リストで代替する
func (r *TripAPI) Geocode(ctx context.Context, q string) ([]domain.GeoLocation, error) {
	params := url.Values{}
	params.Set("query", q)

	var locations []domain.GeoLocation
	if err := r.client.Get(ctx, "/api/v1/geo", params, &locations); err != nil {
		if apiErr := domain.AsAPIError(err); apiErr.ResultCode == "NETWORK_ERROR" {
			return matchFallbackCities(q), nil
		}
		return nil, err
	}
	return locations, nil
}

func matchFallbackCities(q string) []domain.GeoLocation {
	lowered := strings.ToLower(q)
	matched := make([]domain.GeoLocation, 0)
	for _, city := range fallbackCities {
		if strings.Contains(strings.ToLower(city.Name), lowered) {
			matched = append(matched, city)
			continue
		}
		if city.LocalName != nil && strings.Contains(*city.LocalName, q) {
			matched = append(matched, city)
		}
	}
	return matched
}

// ClothRecommendations retrieves clothing recommendations for a trip
func (r *TripAPI) ClothRecommendations(ctx context.Context, place, start, end string) ([]domain.ClothRecommendation, error) {
	params := url.Values{}
	params.Set("place", place)
	params.Set("start", start)
	params.Set("end", end)

	var clothes []domain.ClothRecommendation
	if err := r.client.Get(ctx, "/api/v1/cloth", params, &clothes); err != nil {
		return nil, err
	}
	return clothes, nil
}

// Weather retrieves the forecast for a resolved location and date range
func (r *TripAPI) Weather(ctx context.Context, location, start, end string, lat, lon float64) ([]domain.WeatherInfo, error) {
	params := url.Values{}
	params.Set("location", location)
	params.Set("start", start)
	params.Set("end", end)
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var forecast []domain.WeatherInfo
	if err := r.client.Get(ctx, "/api/v1/weather", params, &forecast); err != nil {
		return nil, err
	}
	return forecast, nil
}
