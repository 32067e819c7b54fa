package query

import (
	"net/url"
	"strconv"

	"wearlog/src/domain"
)

// BuildListQuery は (ページ, 確定済みフィルタ) からワイヤレベルのクエリを組み立てる。
// page と size=10 は常に含め、各フィルタは値が確定している場合のみ追加する。
// 純粋関数であり失敗しない（不正な入力はフィルタエディタ側で弾かれる前提）。
func BuildListQuery(page int, filter domain.CommentFilter) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(domain.PageSize))

	if filter.Location != "" {
		params.Set("location", filter.Location)
	}
	if filter.FeelsLikeTemperature != nil {
		params.Set("feelsLikeTemperature", strconv.FormatFloat(*filter.FeelsLikeTemperature, 'f', -1, 64))
	}
	if filter.Month != nil && *filter.Month >= 1 && *filter.Month <= 12 {
		params.Set("month", strconv.Itoa(*filter.Month))
	}

	return params
}
