package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"wearlog/src/domain"

	"github.com/sirupsen/logrus"
)

var (
	ErrPlanFieldsRequired = errors.New("place, start and end are required")
	ErrPlanDateFormat     = errors.New("dates must be in YYYY-MM-DD format")
	ErrPlanDateOrder      = errors.New("end date must not be before start date")
	ErrNoGeocodeResult    = errors.New("no geocoding result for the given place")
)

// PlanUsecase defines the trip-planning lookup:
// 行き先の解決（ステージ1）→ 服装推薦と天気予報の並行取得（ステージ2）
type PlanUsecase interface {
	Lookup(ctx context.Context, req domain.PlanRequest) (*domain.PlanResult, error)
}

type planUsecase struct {
	repo   domain.TripRepository
	logger *logrus.Logger
}

// NewPlanUsecase creates a new plan usecase
func NewPlanUsecase(repo domain.TripRepository, logger *logrus.Logger) PlanUsecase {
	return &planUsecase{
		repo:   repo,
		logger: logger,
	}
}

// Lookup resolves the destination and joins the cloth + weather fetches.
// ステージ2はどちらか一方でも失敗したらステージ全体を単一のエラーで失敗させる
func (u *planUsecase) Lookup(ctx context.Context, req domain.PlanRequest) (*domain.PlanResult, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	// ステージ1: 行き先を解決する（先頭の候補を採用）
	locations, err := u.repo.Geocode(ctx, req.Place)
	if err != nil {
		u.logger.WithError(err).WithField("place", req.Place).Error("ジオコーディングに失敗")
		return nil, err
	}
	if len(locations) == 0 {
		return nil, ErrNoGeocodeResult
	}
	location := locations[0]

	// ステージ2: 服装推薦と天気予報を並行に取得して合流する
	var (
		wg         sync.WaitGroup
		clothes    []domain.ClothRecommendation
		forecast   []domain.WeatherInfo
		clothErr   error
		weatherErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		clothes, clothErr = u.repo.ClothRecommendations(ctx, req.Place, req.Start, req.End)
	}()
	go func() {
		defer wg.Done()
		forecast, weatherErr = u.repo.Weather(ctx, location.Name, req.Start, req.End, location.Lat, location.Lon)
	}()
	wg.Wait()

	if clothErr != nil {
		u.logger.WithError(clothErr).WithField("place", req.Place).Error("服装推薦の取得に失敗")
		return nil, clothErr
	}
	if weatherErr != nil {
		u.logger.WithError(weatherErr).WithField("place", req.Place).Error("天気予報の取得に失敗")
		return nil, weatherErr
	}

	u.logger.WithFields(logrus.Fields{
		"place":    req.Place,
		"resolved": location.Name,
		"clothes":  len(clothes),
		"forecast": len(forecast),
	}).Info("旅行プランの検索が完了しました")

	return &domain.PlanResult{
		Location: location,
		Clothes:  groupByCategory(clothes),
		Forecast: forecast,
	}, nil
}

func validatePlanRequest(req domain.PlanRequest) error {
	if req.Place == "" || req.Start == "" || req.End == "" {
		return ErrPlanFieldsRequired
	}

	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		return ErrPlanDateFormat
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		return ErrPlanDateFormat
	}
	if end.Before(start) {
		return ErrPlanDateOrder
	}
	return nil
}

// groupByCategory buckets recommendations per category.
// 未知のカテゴリは EXTRA に寄せる
func groupByCategory(items []domain.ClothRecommendation) map[domain.ClothCategory][]domain.ClothRecommendation {
	grouped := make(map[domain.ClothCategory][]domain.ClothRecommendation)
	for _, item := range items {
		category := item.Category
		if !category.IsValid() {
			category = domain.CategoryExtra
		}
		grouped[category] = append(grouped[category], item)
	}
	return grouped
}
