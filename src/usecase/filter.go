package usecase

import (
	"math"
	"strconv"
	"strings"

	"wearlog/src/domain"
)

// FilterStaging holds raw filter inputs as typed by the user,
// decoupled from the committed filter set so typing never triggers a fetch
type FilterStaging struct {
	Location             string `json:"location"`
	FeelsLikeTemperature string `json:"feelsLikeTemperature"`
	Month                string `json:"month"`
}

// FilterEditor manages staged filter input until it is committed
type FilterEditor struct {
	staging FilterStaging
}

// NewFilterEditor creates an empty filter editor
func NewFilterEditor() *FilterEditor {
	return &FilterEditor{}
}

// SetLocation updates the staged location input
func (e *FilterEditor) SetLocation(v string) {
	e.staging.Location = v
}

// SetFeelsLikeTemperature updates the staged temperature input
func (e *FilterEditor) SetFeelsLikeTemperature(v string) {
	e.staging.FeelsLikeTemperature = v
}

// SetMonth updates the staged month input
func (e *FilterEditor) SetMonth(v string) {
	e.staging.Month = v
}

// Staging returns the current staged inputs
func (e *FilterEditor) Staging() FilterStaging {
	return e.staging
}

// Reset clears all staged inputs
func (e *FilterEditor) Reset() {
	e.staging = FilterStaging{}
}

// ValidateAndCommit converts the staged inputs into a committed filter set.
// 検証に落ちた項目は黙って除外する（エラーにはしない）:
//   - location: 前後の空白を除いた非空文字列のみ採用
//   - feelsLikeTemperature: 有限の数値としてパースできた場合のみ採用
//   - month: 整数かつ 1〜12 の場合のみ採用
func (e *FilterEditor) ValidateAndCommit() domain.CommentFilter {
	return ValidateStaging(e.staging)
}

// ValidateStaging applies the soft-validation policy to raw filter inputs
func ValidateStaging(staging FilterStaging) domain.CommentFilter {
	var filter domain.CommentFilter

	if loc := strings.TrimSpace(staging.Location); loc != "" {
		filter.Location = loc
	}

	if raw := strings.TrimSpace(staging.FeelsLikeTemperature); raw != "" {
		if temp, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(temp, 0) && !math.IsNaN(temp) {
			filter.FeelsLikeTemperature = &temp
		}
	}

	if raw := strings.TrimSpace(staging.Month); raw != "" {
		if month, err := strconv.Atoi(raw); err == nil && month >= 1 && month <= 12 {
			filter.Month = &month
		}
	}

	return filter
}
