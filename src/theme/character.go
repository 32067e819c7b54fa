package theme

import "strings"

// TempGroup は体感温度の区分 (HOT / NORMAL / COLD)
type TempGroup string

const (
	TempHot    TempGroup = "HOT"
	TempNormal TempGroup = "NORMAL"
	TempCold   TempGroup = "COLD"
)

// WeatherGroup は天気の大分類 (CLEAR / CLOUDY / RAINY)
type WeatherGroup string

const (
	WeatherClear  WeatherGroup = "CLEAR"
	WeatherCloudy WeatherGroup = "CLOUDY"
	WeatherRainy  WeatherGroup = "RAINY"
)

// characters は (温度区分 x 天気区分) ごとのキャラクター画像パス
var characters = map[string]string{
	"HOT_CLEAR":  "/images/char-hot-clear.png",
	"HOT_CLOUDY": "/images/char-hot-cloudy.png",
	"HOT_RAINY":  "/images/char-hot-rainy.png",

	"NORMAL_CLEAR":  "/images/char-normal-clear.png",
	"NORMAL_CLOUDY": "/images/char-normal-cloudy.png",
	"NORMAL_RAINY":  "/images/char-normal-rainy.png",

	"COLD_CLEAR":  "/images/char-cold-clear.png",
	"COLD_CLOUDY": "/images/char-cold-cloudy.png",
	"COLD_RAINY":  "/images/char-cold-rainy.png",

	DefaultKey: "/images/char-normal-clear.png",
}

var rainyKeywords = []string{
	"RAIN", "SNOW", "DRIZZLE", "FREEZING",
	"MIST", "FOG", "THUNDER", "SQUALL", "TORNADO",
}

var cloudyKeywords = []string{
	"CLOUD", "OVERCAST", "DUST", "HAZE", "SMOKE", "SAND", "ASH",
}

// TempGroupFor classifies a feels-like temperature
func TempGroupFor(temp float64) TempGroup {
	switch {
	case temp >= 28:
		return TempHot
	case temp <= 10:
		return TempCold
	default:
		return TempNormal
	}
}

// WeatherGroupFor classifies a weather condition by keyword
func WeatherGroupFor(weather string) WeatherGroup {
	upper := strings.ToUpper(weather)

	for _, k := range rainyKeywords {
		if strings.Contains(upper, k) {
			return WeatherRainy
		}
	}
	for _, k := range cloudyKeywords {
		if strings.Contains(upper, k) {
			return WeatherCloudy
		}
	}
	return WeatherClear
}

// CharacterFor returns the character image for a feels-like temperature and
// weather condition, falling back to the DEFAULT entry
func CharacterFor(temp float64, weather string) string {
	key := string(TempGroupFor(temp)) + "_" + string(WeatherGroupFor(weather))
	if img, ok := characters[key]; ok {
		return img
	}
	return characters[DefaultKey]
}
