package handler

import (
	"strconv"

	"wearlog/src/domain"
	"wearlog/src/usecase"
)

// CreateCommentRequestDTO represents HTTP request for creating a comment
type CreateCommentRequestDTO struct {
	Email                string  `json:"email" binding:"required,email" validate:"required,email"`
	Password             string  `json:"password" binding:"required,min=4" validate:"required,min=4"`
	Title                string  `json:"title" binding:"required,max=200" validate:"required,max=200,safe_text"`
	Sentence             string  `json:"sentence" binding:"required" validate:"required,safe_text"`
	TagString            string  `json:"tagString" validate:"omitempty,max=200,safe_tag"`
	ImageURL             string  `json:"imageUrl" validate:"omitempty,max=500"`
	Location             string  `json:"location" binding:"required,max=100" validate:"required,max=100,safe_text"`
	Date                 string  `json:"date" binding:"required" validate:"required,calendar_date"`
	FeelsLikeTemperature float64 `json:"feelsLikeTemperature"`
}

// FilterStagingDTO represents raw filter inputs before soft validation.
// 検証に落ちた項目は黙って除外されるためバインドエラーにはしない
type FilterStagingDTO struct {
	Location             string `json:"location"`
	FeelsLikeTemperature string `json:"feelsLikeTemperature"`
	Month                string `json:"month"`
}

// ActiveFilterDTO represents one committed predicate (フィルタチップ表示用)
type ActiveFilterDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ListSnapshotDTO represents the list session state returned to the UI
type ListSnapshotDTO struct {
	Loaded        bool               `json:"loaded"`
	Items         []CommentDTO       `json:"items"`
	Page          int                `json:"page"`
	TotalPages    int                `json:"totalPages"`
	TotalElements int                `json:"totalElements"`
	HasNext       bool               `json:"hasNext"`
	HasPrev       bool               `json:"hasPrev"`
	Filters       []ActiveFilterDTO  `json:"filters"`
	LastError     *domain.APIError   `json:"lastError,omitempty"`
}

// CommentDTO represents a comment row in the list and detail views
type CommentDTO struct {
	ID          int                `json:"id"`
	RowNumber   int                `json:"rowNumber,omitempty"`
	Email       string             `json:"email"`
	Title       string             `json:"title"`
	Sentence    string             `json:"sentence"`
	Tags        []string           `json:"tags,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	WeatherInfo domain.WeatherInfo `json:"weatherInfo"`
}

// CommentDetailDTO adds the resolved theme to the detail view
type CommentDetailDTO struct {
	CommentDTO
	BackgroundImage string `json:"backgroundImage"`
	CharacterImage  string `json:"characterImage"`
}

// VerifyPasswordRequestDTO represents the password verification request
type VerifyPasswordRequestDTO struct {
	Password string `json:"password" binding:"required"`
}

// VerifyPasswordResponseDTO represents the backend verdict
type VerifyPasswordResponseDTO struct {
	Verified bool `json:"verified"`
}

// ImageUploadResponseDTO represents the uploaded image location
type ImageUploadResponseDTO struct {
	ImageURL string `json:"imageUrl"`
}

// ErrorResponseDTO represents HTTP error response
type ErrorResponseDTO struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// snapshot変換ヘルパー

func toListSnapshotDTO(snap usecase.ListSnapshot) ListSnapshotDTO {
	dto := ListSnapshotDTO{
		Loaded:        snap.Items != nil,
		Items:         make([]CommentDTO, 0, len(snap.Items)),
		Page:          snap.Page,
		TotalPages:    snap.TotalPages,
		TotalElements: snap.TotalElements,
		HasNext:       snap.HasNext(),
		HasPrev:       snap.HasPrev(),
		Filters:       toActiveFilterDTOs(snap.Filter),
		LastError:     snap.LastError,
	}
	for i, comment := range snap.Items {
		row := toCommentDTO(comment)
		row.RowNumber = snap.RowNumber(i)
		dto.Items = append(dto.Items, row)
	}
	return dto
}

func toCommentDTO(comment domain.Comment) CommentDTO {
	return CommentDTO{
		ID:          comment.ID,
		Email:       comment.Email,
		Title:       comment.Title,
		Sentence:    comment.Sentence,
		Tags:        comment.Tags(),
		ImageURL:    comment.ImageURL,
		WeatherInfo: comment.WeatherInfo,
	}
}

func toActiveFilterDTOs(filter domain.CommentFilter) []ActiveFilterDTO {
	chips := make([]ActiveFilterDTO, 0, 3)
	if filter.Location != "" {
		chips = append(chips, ActiveFilterDTO{Key: string(domain.FilterLocation), Value: filter.Location})
	}
	if filter.FeelsLikeTemperature != nil {
		chips = append(chips, ActiveFilterDTO{
			Key:   string(domain.FilterFeelsLikeTemperature),
			Value: formatFloat(*filter.FeelsLikeTemperature),
		})
	}
	if filter.Month != nil {
		chips = append(chips, ActiveFilterDTO{Key: string(domain.FilterMonth), Value: formatInt(*filter.Month)})
	}
	return chips
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
