package infrastructure_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wearlog/src/domain"
	"wearlog/src/infrastructure/api"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func newClient(serverURL string) *api.Client {
	return api.NewClient(serverURL, 2*time.Second, testLogger())
}

func TestCommentAPIList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/comments", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))
		assert.Equal(t, "Seoul", r.URL.Query().Get("location"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": [
				{"id": 12, "title": "晴れの日", "tagString": "#夏", "weatherInfoDto": {"weather": "CLEAR_SKY", "feelsLikeTemperature": 25}}
			],
			"totalPages": 2,
			"totalElements": 12
		}`))
	}))
	defer server.Close()

	repo := api.NewCommentAPI(newClient(server.URL))

	page, err := repo.List(context.Background(), 1, domain.CommentFilter{Location: "Seoul"})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, 12, page.Content[0].ID)
	assert.Equal(t, "CLEAR_SKY", page.Content[0].WeatherInfo.Weather)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 12, page.TotalElements)
}

func TestCommentAPIErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"resultCode": "INVALID_PARAMETER", "msg": "pageが不正です"}`))
	}))
	defer server.Close()

	repo := api.NewCommentAPI(newClient(server.URL))

	_, err := repo.List(context.Background(), 0, domain.CommentFilter{})
	require.Error(t, err)

	apiErr := domain.AsAPIError(err)
	assert.Equal(t, "INVALID_PARAMETER", apiErr.ResultCode)
	assert.Equal(t, "pageが不正です", apiErr.Msg)
}

func TestCommentAPIErrorWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("unexpected failure"))
	}))
	defer server.Close()

	repo := api.NewCommentAPI(newClient(server.URL))

	// 封筒がデコードできない場合はHTTPステータスから組み立てる
	_, err := repo.List(context.Background(), 0, domain.CommentFilter{})
	apiErr := domain.AsAPIError(err)
	assert.Equal(t, "HTTP_500", apiErr.ResultCode)
	assert.Equal(t, "Internal Server Error", apiErr.Msg)
}

func TestCommentAPIDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	repo := api.NewCommentAPI(newClient(server.URL))

	_, err := repo.GetByID(context.Background(), 1)
	apiErr := domain.AsAPIError(err)
	assert.Equal(t, "DECODE_ERROR", apiErr.ResultCode)
}

func TestCommentAPINetworkError(t *testing.T) {
	// 接続先の無いアドレスを使う
	repo := api.NewCommentAPI(newClient("http://127.0.0.1:1"))

	_, err := repo.List(context.Background(), 0, domain.CommentFilter{})
	apiErr := domain.AsAPIError(err)
	assert.Equal(t, "NETWORK_ERROR", apiErr.ResultCode)
}

func TestCommentAPIVerifyPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/comments/7/verify-password", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resultCode": "SUCCESS", "msg": "", "data": true}`))
	}))
	defer server.Close()

	repo := api.NewCommentAPI(newClient(server.URL))

	ok, err := repo.VerifyPassword(context.Background(), 7, "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCommentAPIDelete(t *testing.T) {
	deleted := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/comments/3", r.URL.Path)
		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	repo := api.NewCommentAPI(newClient(server.URL))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.True(t, deleted)
}

func TestTripAPIGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/geo", r.URL.Path)
		assert.Equal(t, "Seoul", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name": "Seoul", "country": "KR", "lat": 37.5665, "lon": 126.978, "localName": "서울"}]`))
	}))
	defer server.Close()

	repo := api.NewTripAPI(newClient(server.URL))

	locations, err := repo.Geocode(context.Background(), "Seoul")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Seoul", locations[0].Name)
	require.NotNil(t, locations[0].LocalName)
	assert.Equal(t, "서울", *locations[0].LocalName)
}

func TestTripAPIGeocodeFallsBackWhenUnreachable(t *testing.T) {
	// ネットワーク障害時は組み込みの都市リストで代替する
	repo := api.NewTripAPI(newClient("http://127.0.0.1:1"))

	locations, err := repo.Geocode(context.Background(), "seo")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Seoul", locations[0].Name)

	// ローカル名でも一致する
	locations, err = repo.Geocode(context.Background(), "東京")
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Tokyo", locations[0].Name)

	// 一致しなければ空（エラーにはしない）
	locations, err = repo.Geocode(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestTripAPIGeocodeBackendErrorIsNotMasked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	repo := api.NewTripAPI(newClient(server.URL))

	// バックエンド自体のエラーは代替せずそのまま返す
	_, err := repo.Geocode(context.Background(), "Seoul")
	require.Error(t, err)
	assert.Equal(t, "HTTP_500", domain.AsAPIError(err).ResultCode)
}

func TestTripAPIWeatherParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/weather", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Seoul", q.Get("location"))
		assert.Equal(t, "2025-07-01", q.Get("start"))
		assert.Equal(t, "2025-07-02", q.Get("end"))
		assert.Equal(t, "37.5665", q.Get("lat"))
		assert.Equal(t, "126.978", q.Get("lon"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"weather": "LIGHT_RAIN", "feelsLikeTemperature": 21, "date": "2025-07-01"}]`))
	}))
	defer server.Close()

	repo := api.NewTripAPI(newClient(server.URL))

	forecast, err := repo.Weather(context.Background(), "Seoul", "2025-07-01", "2025-07-02", 37.5665, 126.978)
	require.NoError(t, err)
	require.Len(t, forecast, 1)
	assert.Equal(t, "LIGHT_RAIN", forecast[0].Weather)
}

func TestTripAPIClothRecommendations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/cloth", r.URL.Path)
		assert.Equal(t, "Seoul", r.URL.Query().Get("place"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"clothName": "Tシャツ", "imageUrl": "/images/tshirt.png", "category": "CASUAL_DAILY"}]`))
	}))
	defer server.Close()

	repo := api.NewTripAPI(newClient(server.URL))

	clothes, err := repo.ClothRecommendations(context.Background(), "Seoul", "2025-07-01", "2025-07-02")
	require.NoError(t, err)
	require.Len(t, clothes, 1)
	assert.Equal(t, domain.CategoryCasualDaily, clothes[0].Category)
}
