package handler

import (
	"net/http"
	"strconv"

	"wearlog/src/domain"
	"wearlog/src/theme"
	"wearlog/src/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PlanHandler handles the trip-planning lookup and its supporting endpoints
type PlanHandler struct {
	planUsecase usecase.PlanUsecase
	tripRepo    domain.TripRepository
	logger      *logrus.Logger
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planUsecase usecase.PlanUsecase, tripRepo domain.TripRepository, logger *logrus.Logger) *PlanHandler {
	return &PlanHandler{
		planUsecase: planUsecase,
		tripRepo:    tripRepo,
		logger:      logger,
	}
}

// GeoSuggestionDTO represents one destination candidate
type GeoSuggestionDTO struct {
	domain.GeoLocation
	DisplayName string `json:"displayName"`
}

// PlanResponseDTO represents the joined planning result
type PlanResponseDTO struct {
	Location GeoSuggestionDTO                                      `json:"location"`
	Clothes  map[domain.ClothCategory][]domain.ClothRecommendation `json:"clothes"`
	Forecast []ForecastEntryDTO                                    `json:"forecast"`
}

// ForecastEntryDTO decorates a daily forecast with its theme images
type ForecastEntryDTO struct {
	domain.WeatherInfo
	BackgroundImage string `json:"backgroundImage"`
	CharacterImage  string `json:"characterImage"`
}

// ThemeResponseDTO represents a resolved weather theme
type ThemeResponseDTO struct {
	Weather         string `json:"weather"`
	BackgroundImage string `json:"backgroundImage"`
	CharacterImage  string `json:"characterImage"`
}

// GetPlan runs the two-stage lookup: 行き先の解決 → 服装と天気の並行取得
func (h *PlanHandler) GetPlan(c *gin.Context) {
	req := domain.PlanRequest{
		Place: c.Query("place"),
		Start: c.Query("start"),
		End:   c.Query("end"),
	}

	result, err := h.planUsecase.Lookup(c.Request.Context(), req)
	if err != nil {
		h.logger.WithError(err).WithField("place", req.Place).Error("旅行プランの検索に失敗")

		status := http.StatusInternalServerError
		switch err {
		case usecase.ErrPlanFieldsRequired, usecase.ErrPlanDateFormat, usecase.ErrPlanDateOrder:
			status = http.StatusBadRequest
		case usecase.ErrNoGeocodeResult:
			status = http.StatusNotFound
		default:
			if isBackendError(err) {
				status = http.StatusBadGateway
			}
		}

		c.JSON(status, ErrorResponseDTO{
			Error:   "Failed to look up plan",
			Message: err.Error(),
		})
		return
	}

	forecast := make([]ForecastEntryDTO, 0, len(result.Forecast))
	for _, day := range result.Forecast {
		forecast = append(forecast, ForecastEntryDTO{
			WeatherInfo:     day,
			BackgroundImage: theme.ForCondition(day.Weather).BackgroundImage,
			CharacterImage:  theme.CharacterFor(day.FeelsLikeTemperature, day.Weather),
		})
	}

	c.JSON(http.StatusOK, PlanResponseDTO{
		Location: GeoSuggestionDTO{
			GeoLocation: result.Location,
			DisplayName: result.Location.DisplayName(),
		},
		Clothes:  result.Clothes,
		Forecast: forecast,
	})
}

// Geocode returns destination candidates for an incremental search box
func (h *PlanHandler) Geocode(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid query",
			Message: "query is required",
		})
		return
	}

	locations, err := h.tripRepo.Geocode(c.Request.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("ジオコーディングに失敗")
		c.JSON(http.StatusBadGateway, ErrorResponseDTO{
			Error: "Failed to geocode",
		})
		return
	}

	suggestions := make([]GeoSuggestionDTO, 0, len(locations))
	for _, loc := range locations {
		suggestions = append(suggestions, GeoSuggestionDTO{
			GeoLocation: loc,
			DisplayName: loc.DisplayName(),
		})
	}

	c.JSON(http.StatusOK, suggestions)
}

// GetTheme resolves the theme for a weather condition.
// 未知の条件は DEFAULT にフォールバックするため常に 200 を返す
func (h *PlanHandler) GetTheme(c *gin.Context) {
	weather := c.Query("weather")
	resolved := theme.ForCondition(weather)

	character := resolved.CharacterImage
	if tempStr := c.Query("temp"); tempStr != "" {
		if temp, err := strconv.ParseFloat(tempStr, 64); err == nil {
			character = theme.CharacterFor(temp, weather)
		}
	}

	c.JSON(http.StatusOK, ThemeResponseDTO{
		Weather:         weather,
		BackgroundImage: resolved.BackgroundImage,
		CharacterImage:  character,
	})
}
