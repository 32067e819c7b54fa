package domain

import (
	"strings"
)

// PageSize は一覧取得の固定ページサイズ
const PageSize = 10

// Comment represents a weather-tagged journal entry
type Comment struct {
	ID          int         `json:"id"`
	Email       string      `json:"email"`
	Title       string      `json:"title"`
	Sentence    string      `json:"sentence"`
	TagString   string      `json:"tagString"`
	ImageURL    string      `json:"imageUrl,omitempty"`
	WeatherInfo WeatherInfo `json:"weatherInfoDto"`
}

// WeatherInfo represents the weather snapshot embedded in a comment
type WeatherInfo struct {
	ID                   int      `json:"id"`
	Weather              string   `json:"weather"`
	Description          string   `json:"description,omitempty"`
	DailyTemperatureGap  float64  `json:"dailyTemperatureGap"`
	FeelsLikeTemperature float64  `json:"feelsLikeTemperature"`
	MaxTemperature       float64  `json:"maxTemperature"`
	MinTemperature       float64  `json:"minTemperature"`
	Pop                  *float64 `json:"pop,omitempty"`
	Rain                 *float64 `json:"rain,omitempty"`
	Snow                 *float64 `json:"snow,omitempty"`
	Humidity             *float64 `json:"humidity,omitempty"`
	WindSpeed            *float64 `json:"windSpeed,omitempty"`
	WindDeg              *float64 `json:"windDeg,omitempty"`
	UVI                  *float64 `json:"uvi,omitempty"`
	Location             string   `json:"location"`
	Date                 string   `json:"date"`
}

// CommentPage represents one page of the comment list as reported by the backend
type CommentPage struct {
	Content       []Comment `json:"content"`
	TotalPages    int       `json:"totalPages"`
	TotalElements int       `json:"totalElements"`
}

// FilterKey identifies a single search predicate
type FilterKey string

const (
	FilterLocation             FilterKey = "location"
	FilterFeelsLikeTemperature FilterKey = "feelsLikeTemperature"
	FilterMonth                FilterKey = "month"
)

// CommentFilter represents the committed search predicates for the comment list.
// A zero value means "no constraint" for every key. Values are only ever set
// after passing validation in the filter editor.
type CommentFilter struct {
	Location             string
	FeelsLikeTemperature *float64
	Month                *int
}

// IsEmpty reports whether no predicate is active
func (f CommentFilter) IsEmpty() bool {
	return f.Location == "" && f.FeelsLikeTemperature == nil && f.Month == nil
}

// Has reports whether the given predicate is active
func (f CommentFilter) Has(key FilterKey) bool {
	switch key {
	case FilterLocation:
		return f.Location != ""
	case FilterFeelsLikeTemperature:
		return f.FeelsLikeTemperature != nil
	case FilterMonth:
		return f.Month != nil
	default:
		return false
	}
}

// Without returns a copy of the filter with the given predicate removed.
// Removing an absent predicate is a no-op.
func (f CommentFilter) Without(key FilterKey) CommentFilter {
	switch key {
	case FilterLocation:
		f.Location = ""
	case FilterFeelsLikeTemperature:
		f.FeelsLikeTemperature = nil
	case FilterMonth:
		f.Month = nil
	}
	return f
}

// Tags splits the '#'-delimited tag string into individual tags.
// 区切り文字のエスケープは無いため空要素だけを除外する
func (c Comment) Tags() []string {
	if c.TagString == "" {
		return nil
	}
	parts := strings.Split(c.TagString, "#")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// CreateCommentRequest represents input for creating a comment
type CreateCommentRequest struct {
	Email                string
	Password             string
	Title                string
	Sentence             string
	TagString            string
	ImageURL             string
	Location             string
	Date                 string
	FeelsLikeTemperature float64
}
