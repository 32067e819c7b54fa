package validator

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// CustomValidator は投稿フォーム向けの拡張バリデーション機能を提供
type CustomValidator struct {
	validator   *validator.Validate
	tagPattern  *regexp.Regexp
	datePattern *regexp.Regexp
}

// ValidationError はバリデーションエラーの詳細情報
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationErrors は複数のバリデーションエラー
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed: %d errors", len(ve.Errors))
}

// NewCustomValidator creates a new custom validator instance
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	cv := &CustomValidator{
		validator: v,
		// タグは英数字・ハングル・かな・漢字と空白を許可
		tagPattern:  regexp.MustCompile(`^[a-zA-Z0-9_\-\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}\x{AC00}-\x{D7AF}\s]+$`),
		datePattern: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	}

	// カスタムバリデーションルールを登録
	v.RegisterValidation("safe_text", cv.validateSafeText)
	v.RegisterValidation("safe_tag", cv.validateSafeTag)
	v.RegisterValidation("calendar_date", cv.validateCalendarDate)

	return cv
}

// Validate validates a struct and returns detailed error information
func (cv *CustomValidator) Validate(s interface{}) error {
	if err := cv.validator.Struct(s); err != nil {
		var validationErrors []ValidationError

		for _, err := range err.(validator.ValidationErrors) {
			ve := ValidationError{
				Field: err.Field(),
				Tag:   err.Tag(),
				Value: err.Value(),
			}

			// カスタムエラーメッセージを生成
			ve.Message = cv.generateErrorMessage(err)
			validationErrors = append(validationErrors, ve)
		}

		return ValidationErrors{Errors: validationErrors}
	}
	return nil
}

// SanitizeInput sanitizes input data to prevent XSS and other attacks
func (cv *CustomValidator) SanitizeInput(input string) string {
	// HTMLエスケープ
	sanitized := html.EscapeString(input)

	// 前後の空白を除去
	sanitized = strings.TrimSpace(sanitized)

	// 連続する空白を単一の空白に変換
	sanitized = regexp.MustCompile(`\s+`).ReplaceAllString(sanitized, " ")

	return sanitized
}

// SanitizeTagString sanitizes a '#'-delimited tag string.
// 空タグ・重複・不正文字・30文字超のタグを除外して組み直す
func (cv *CustomValidator) SanitizeTagString(tagString string) string {
	if tagString == "" {
		return ""
	}

	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, tag := range strings.Split(tagString, "#") {
		sanitized := cv.SanitizeInput(tag)

		if sanitized == "" || seen[sanitized] {
			continue
		}
		if utf8.RuneCountInString(sanitized) > 30 {
			continue // 長すぎるタグは除外
		}
		if !cv.tagPattern.MatchString(sanitized) {
			continue
		}

		seen[sanitized] = true
		result = append(result, sanitized)
	}

	if len(result) == 0 {
		return ""
	}
	return "#" + strings.Join(result, "#")
}

// カスタムバリデーション関数

func (cv *CustomValidator) validateSafeText(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// 制御文字の排除（タブ、改行、復帰は許可）
	for _, r := range value {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return false
		}
	}

	return true
}

func (cv *CustomValidator) validateSafeTag(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	for _, tag := range strings.Split(value, "#") {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		if !cv.tagPattern.MatchString(trimmed) {
			return false
		}
	}
	return true
}

func (cv *CustomValidator) validateCalendarDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 必須チェックは required に任せる
	}
	return cv.datePattern.MatchString(value)
}

// generateErrorMessage generates user-friendly error messages
func (cv *CustomValidator) generateErrorMessage(err validator.FieldError) string {
	field := err.Field()
	tag := err.Tag()
	value := err.Value()

	switch tag {
	case "required":
		return fmt.Sprintf("%s は必須項目です", field)
	case "max":
		return fmt.Sprintf("%s は %s 文字以下で入力してください", field, err.Param())
	case "min":
		return fmt.Sprintf("%s は %s 文字以上で入力してください", field, err.Param())
	case "email":
		return fmt.Sprintf("%s はメールアドレスの形式で入力してください", field)
	case "safe_text":
		return fmt.Sprintf("%s に不正な文字が含まれています", field)
	case "safe_tag":
		return fmt.Sprintf("%s に使用できない文字が含まれています", field)
	case "calendar_date":
		return fmt.Sprintf("%s は YYYY-MM-DD 形式で入力してください", field)
	default:
		return fmt.Sprintf("%s が無効です (値: %v)", field, value)
	}
}

// ValidateID validates ID path parameters
func (cv *CustomValidator) ValidateID(idStr string) (int, error) {
	// 数値以外の文字をチェック
	if !regexp.MustCompile(`^\d+$`).MatchString(idStr) {
		return 0, fmt.Errorf("ID must be a positive integer")
	}

	// 長さチェック（異常に長いIDを防ぐ）
	if len(idStr) > 10 {
		return 0, fmt.Errorf("ID is too long")
	}

	// パースを試行
	var id int
	if _, err := fmt.Sscanf(idStr, "%d", &id); err != nil {
		return 0, fmt.Errorf("invalid ID format")
	}

	// 正の値チェック
	if id <= 0 {
		return 0, fmt.Errorf("ID must be positive")
	}

	return id, nil
}
