package validator_test

import (
	"strings"
	"testing"

	"wearlog/src/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createForm struct {
	Email     string `validate:"required,email"`
	Title     string `validate:"required,max=200,safe_text"`
	TagString string `validate:"omitempty,safe_tag"`
	Date      string `validate:"required,calendar_date"`
}

func validForm() createForm {
	return createForm{
		Email:     "user@example.com",
		Title:     "蒸し暑い一日",
		TagString: "#夏#半袖",
		Date:      "2025-07-15",
	}
}

func TestValidate(t *testing.T) {
	cv := validator.NewCustomValidator()

	assert.NoError(t, cv.Validate(validForm()))
}

func TestValidateErrors(t *testing.T) {
	cv := validator.NewCustomValidator()

	tests := []struct {
		name   string
		mutate func(f *createForm)
		field  string
		tag    string
	}{
		{
			name:   "メール形式の不正",
			mutate: func(f *createForm) { f.Email = "not-an-email" },
			field:  "Email",
			tag:    "email",
		},
		{
			name:   "制御文字を含むタイトル",
			mutate: func(f *createForm) { f.Title = "bad\x00title" },
			field:  "Title",
			tag:    "safe_text",
		},
		{
			name:   "長すぎるタイトル",
			mutate: func(f *createForm) { f.Title = strings.Repeat("a", 201) },
			field:  "Title",
			tag:    "max",
		},
		{
			name:   "記号を含むタグ",
			mutate: func(f *createForm) { f.TagString = "#ok#<script>" },
			field:  "TagString",
			tag:    "safe_tag",
		},
		{
			name:   "日付形式の不正",
			mutate: func(f *createForm) { f.Date = "15-07-2025変" },
			field:  "Date",
			tag:    "calendar_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := cv.Validate(form)
			require.Error(t, err)

			ve, ok := err.(validator.ValidationErrors)
			require.True(t, ok)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
			assert.Equal(t, tt.tag, ve.Errors[0].Tag)
			assert.NotEmpty(t, ve.Errors[0].Message)
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	cv := validator.NewCustomValidator()

	tests := []struct {
		input    string
		expected string
	}{
		{"  hello  ", "hello"},
		{"a   b\t\tc", "a b c"},
		{"<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"普通のテキスト", "普通のテキスト"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cv.SanitizeInput(tt.input), "input %q", tt.input)
	}
}

func TestSanitizeTagString(t *testing.T) {
	cv := validator.NewCustomValidator()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"空文字", "", ""},
		{"正常なタグ列", "#夏#半袖", "#夏#半袖"},
		{"重複の除去", "#dup#dup#ok", "#dup#ok"},
		{"空タグの除去", "###a##", "#a"},
		{"前後の空白除去", "# tag #another ", "#tag#another"},
		{"不正文字のタグを除外", "#ok#<bad>", "#ok"},
		{"30文字超のタグを除外", "#" + strings.Repeat("あ", 31) + "#ok", "#ok"},
		{"全タグが不正なら空文字", "#<a>#<b>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cv.SanitizeTagString(tt.input))
		})
	}
}

func TestValidateID(t *testing.T) {
	cv := validator.NewCustomValidator()

	id, err := cv.ValidateID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	invalid := []string{"", "abc", "-1", "0", "1.5", "12345678901"}
	for _, input := range invalid {
		_, err := cv.ValidateID(input)
		assert.Error(t, err, "input %q", input)
	}
}
