package theme

// Theme は天気状態ごとの背景・キャラクター画像の組
type Theme struct {
	BackgroundImage string `json:"backgroundImage"`
	CharacterImage  string `json:"characterImage"`
}

// DefaultKey is the fallback entry used for unknown weather conditions
const DefaultKey = "DEFAULT"

// weatherThemes は起動時に一度だけ初期化される不変のマッピング。
// キーはバックエンドの WeatherInfo.weather enum 値と一致する
var weatherThemes = map[string]Theme{
	// 雷雨
	"THUNDERSTORM_LIGHT_RAIN":    {BackgroundImage: "/images/bg-thunderstorm-light.png", CharacterImage: "/images/rain-character.png"},
	"THUNDERSTORM_RAIN":          {BackgroundImage: "/images/bg-thunderstorm.png", CharacterImage: "/images/rain-character.png"},
	"THUNDERSTORM_HEAVY_RAIN":    {BackgroundImage: "/images/bg-thunderstorm-heavy.png", CharacterImage: "/images/rain-character.png"},
	"LIGHT_THUNDERSTORM":         {BackgroundImage: "/images/bg-thunderstorm-light.png", CharacterImage: "/images/rain-character.png"},
	"THUNDERSTORM":               {BackgroundImage: "/images/bg-thunderstorm.png", CharacterImage: "/images/rain-character.png"},
	"HEAVY_THUNDERSTORM":         {BackgroundImage: "/images/bg-thunderstorm-heavy.png", CharacterImage: "/images/rain-character.png"},
	"RAGGED_THUNDERSTORM":        {BackgroundImage: "/images/bg-thunderstorm-ragged.png", CharacterImage: "/images/rain-character.png"},
	"THUNDERSTORM_LIGHT_DRIZZLE": {BackgroundImage: "/images/bg-thunderstorm-light.png", CharacterImage: "/images/rain-character.png"},
	"THUNDERSTORM_DRIZZLE":       {BackgroundImage: "/images/bg-thunderstorm.png", CharacterImage: "/images/rain-character.png"},
	"THUNDERSTORM_HEAVY_DRIZZLE": {BackgroundImage: "/images/bg-thunderstorm-heavy.png", CharacterImage: "/images/rain-character.png"},

	// 霧雨
	"LIGHT_DRIZZLE":                 {BackgroundImage: "/images/bg-rain-light.png", CharacterImage: "/images/rain-character.png"},
	"DRIZZLE":                       {BackgroundImage: "/images/bg-rain-light.png", CharacterImage: "/images/rain-character.png"},
	"HEAVY_DRIZZLE":                 {BackgroundImage: "/images/bg-rain-light.png", CharacterImage: "/images/rain-character.png"},
	"LIGHT_DRIZZLE_RAIN":            {BackgroundImage: "/images/bg-rain-light.png", CharacterImage: "/images/rain-character.png"},
	"DRIZZLE_RAIN":                  {BackgroundImage: "/images/bg-rain-light.png", CharacterImage: "/images/rain-character.png"},
	"HEAVY_DRIZZLE_RAIN":            {BackgroundImage: "/images/bg-rain-heavy.png", CharacterImage: "/images/rain-character.png"},
	"SHOWER_RAIN_AND_DRIZZLE":       {BackgroundImage: "/images/bg-rain-shower.png", CharacterImage: "/images/rain-character.png"},
	"HEAVY_SHOWER_RAIN_AND_DRIZZLE": {BackgroundImage: "/images/bg-rain-shower.png", CharacterImage: "/images/rain-character.png"},
	"SHOWER_DRIZZLE":                {BackgroundImage: "/images/bg-rain-shower.png", CharacterImage: "/images/rain-character.png"},

	// 雨
	"LIGHT_RAIN":        {BackgroundImage: "/images/bg-rain-light.png", CharacterImage: "/images/rain-character.png"},
	"MODERATE_RAIN":     {BackgroundImage: "/images/bg-rain-light.png", CharacterImage: "/images/rain-character.png"},
	"HEAVY_RAIN":        {BackgroundImage: "/images/bg-rain-heavy.png", CharacterImage: "/images/rain-character.png"},
	"VERY_HEAVY_RAIN":   {BackgroundImage: "/images/bg-rain-heavy.png", CharacterImage: "/images/rain-character.png"},
	"EXTREME_RAIN":      {BackgroundImage: "/images/bg-rain-heavy.png", CharacterImage: "/images/rain-character.png"},
	"FREEZING_RAIN":     {BackgroundImage: "/images/bg-rain-freezing.png", CharacterImage: "/images/rain-character.png"},
	"LIGHT_SHOWER_RAIN": {BackgroundImage: "/images/bg-rain-shower.png", CharacterImage: "/images/rain-character.png"},
	"SHOWER_RAIN":       {BackgroundImage: "/images/bg-rain-shower.png", CharacterImage: "/images/rain-character.png"},
	"HEAVY_SHOWER_RAIN": {BackgroundImage: "/images/bg-rain-shower.png", CharacterImage: "/images/rain-character.png"},
	"RAGGED_SHOWER_RAIN": {BackgroundImage: "/images/bg-rain-shower.png", CharacterImage: "/images/rain-character.png"},

	// 雪
	"LIGHT_SNOW":          {BackgroundImage: "/images/bg-snow-light.png", CharacterImage: "/images/snow-character.png"},
	"SNOW":                {BackgroundImage: "/images/bg-snow.png", CharacterImage: "/images/snow-character.png"},
	"HEAVY_SNOW":          {BackgroundImage: "/images/bg-snow-heavy.png", CharacterImage: "/images/snow-character.png"},
	"SLEET":               {BackgroundImage: "/images/bg-snow-sleet.png", CharacterImage: "/images/snow-character.png"},
	"LIGHT_SHOWER_SLEET":  {BackgroundImage: "/images/bg-snow-sleet.png", CharacterImage: "/images/snow-character.png"},
	"SHOWER_SLEET":        {BackgroundImage: "/images/bg-snow-sleet.png", CharacterImage: "/images/snow-character.png"},
	"LIGHT_RAIN_AND_SNOW": {BackgroundImage: "/images/bg-snow-light.png", CharacterImage: "/images/snow-character.png"},
	"RAIN_AND_SNOW":       {BackgroundImage: "/images/bg-snow.png", CharacterImage: "/images/snow-character.png"},
	"LIGHT_SHOWER_SNOW":   {BackgroundImage: "/images/bg-snow-light.png", CharacterImage: "/images/snow-character.png"},
	"SHOWER_SNOW":         {BackgroundImage: "/images/bg-snow.png", CharacterImage: "/images/snow-character.png"},
	"HEAVY_SHOWER_SNOW":   {BackgroundImage: "/images/bg-snow-heavy.png", CharacterImage: "/images/snow-character.png"},

	// 霧・大気
	"MIST":             {BackgroundImage: "/images/bg-atmosphere-fog.png", CharacterImage: "/images/cloud-character.png"},
	"SMOKE":            {BackgroundImage: "/images/bg-atmosphere-fog.png", CharacterImage: "/images/cloud-character.png"},
	"HAZE":             {BackgroundImage: "/images/bg-atmosphere-fog.png", CharacterImage: "/images/cloud-character.png"},
	"SAND_DUST_WHIRLS": {BackgroundImage: "/images/bg-atmosphere-dust.png", CharacterImage: "/images/cloud-character.png"},
	"FOG":              {BackgroundImage: "/images/bg-atmosphere-fog.png", CharacterImage: "/images/cloud-character.png"},
	"SAND":             {BackgroundImage: "/images/bg-atmosphere-dust.png", CharacterImage: "/images/cloud-character.png"},
	"DUST":             {BackgroundImage: "/images/bg-atmosphere-dust.png", CharacterImage: "/images/cloud-character.png"},
	"VOLCANIC_ASH":     {BackgroundImage: "/images/bg-atmosphere-volcanic.png", CharacterImage: "/images/cloud-character.png"},
	"SQUALLS":          {BackgroundImage: "/images/bg-atmosphere-squalls.png", CharacterImage: "/images/cloud-character.png"},
	"TORNADO":          {BackgroundImage: "/images/bg-atmosphere-tornado.png", CharacterImage: "/images/cloud-character.png"},

	// 快晴
	"CLEAR_SKY": {BackgroundImage: "/images/bg-clear.png", CharacterImage: "/images/clear-character.png"},

	// 曇り
	"FEW_CLOUDS":       {BackgroundImage: "/images/bg-cloud.png", CharacterImage: "/images/cloud-character.png"},
	"SCATTERED_CLOUDS": {BackgroundImage: "/images/bg-cloud.png", CharacterImage: "/images/cloud-character.png"},
	"BROKEN_CLOUDS":    {BackgroundImage: "/images/bg-cloud.png", CharacterImage: "/images/cloud-character.png"},
	"OVERCAST_CLOUDS":  {BackgroundImage: "/images/bg-cloud-overcast.png", CharacterImage: "/images/cloud-character.png"},

	// 猛暑
	"HEAT_WAVE": {BackgroundImage: "/images/bg-clear.png", CharacterImage: "/images/clear-character.png"},

	// 既定値
	DefaultKey: {BackgroundImage: "/images/bg-default.png", CharacterImage: "/images/clear-character.png"},
}

// ForCondition looks up the theme for a weather condition.
// 未知のキーは例外にせず DEFAULT エントリへフォールバックする
func ForCondition(condition string) Theme {
	if t, ok := weatherThemes[condition]; ok {
		return t
	}
	return weatherThemes[DefaultKey]
}

// Known reports whether the condition has a dedicated theme entry
func Known(condition string) bool {
	_, ok := weatherThemes[condition]
	return ok
}
