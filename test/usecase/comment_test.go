package usecase_test

import (
	"context"
	"errors"
	"testing"

	"wearlog/src/domain"
	"wearlog/src/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCommentRepository は domain.CommentRepository のモック実装
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) List(ctx context.Context, page int, filter domain.CommentFilter) (*domain.CommentPage, error) {
	args := m.Called(ctx, page, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentPage), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) VerifyPassword(ctx context.Context, id int, password string) (bool, error) {
	args := m.Called(ctx, id, password)
	return args.Bool(0), args.Error(1)
}

func validCreateRequest() domain.CreateCommentRequest {
	return domain.CreateCommentRequest{
		Email:                "user@example.com",
		Password:             "secret",
		Title:                "蒸し暑い一日",
		Sentence:             "半袖でちょうどよかった",
		TagString:            "#夏#半袖",
		Location:             "Tokyo",
		Date:                 "2025-07-15",
		FeelsLikeTemperature: 31.5,
	}
}

func TestCommentGet(t *testing.T) {
	repo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(repo, testLogger())

	expected := &domain.Comment{ID: 1, Title: "蒸し暑い一日"}
	repo.On("GetByID", mock.Anything, 1).Return(expected, nil)

	comment, err := uc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, expected, comment)
}

func TestCommentGetNotFound(t *testing.T) {
	repo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(repo, testLogger())

	repo.On("GetByID", mock.Anything, 999).Return(nil, errors.New("comment not found"))

	_, err := uc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, usecase.ErrCommentNotFound)
}

func TestCommentCreate(t *testing.T) {
	repo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(repo, testLogger())

	created := &domain.Comment{ID: 10, Title: "蒸し暑い一日"}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(req domain.CreateCommentRequest) bool {
		return req.TagString == "#夏#半袖"
	})).Return(created, nil)

	comment, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, 10, comment.ID)
	repo.AssertExpectations(t)
}

func TestCommentCreateNormalizesTags(t *testing.T) {
	repo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(repo, testLogger())

	req := validCreateRequest()
	req.TagString = "# 夏 ##夏#半袖#"

	repo.On("Create", mock.Anything, mock.MatchedBy(func(req domain.CreateCommentRequest) bool {
		// 空白・空タグ・重複が正規化される
		return req.TagString == "#夏#半袖"
	})).Return(&domain.Comment{ID: 11}, nil)

	_, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCommentCreateValidation(t *testing.T) {
	repo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(repo, testLogger())

	tests := []struct {
		name     string
		mutate   func(req *domain.CreateCommentRequest)
		expected error
	}{
		{"emailなし", func(r *domain.CreateCommentRequest) { r.Email = "" }, usecase.ErrInvalidEmail},
		{"passwordなし", func(r *domain.CreateCommentRequest) { r.Password = "" }, usecase.ErrInvalidPassword},
		{"titleなし", func(r *domain.CreateCommentRequest) { r.Title = "" }, usecase.ErrInvalidTitle},
		{"sentenceなし", func(r *domain.CreateCommentRequest) { r.Sentence = "" }, usecase.ErrInvalidSentence},
		{"locationなし", func(r *domain.CreateCommentRequest) { r.Location = "" }, usecase.ErrInvalidLocation},
		{"日付形式の不正", func(r *domain.CreateCommentRequest) { r.Date = "2025/07/15" }, usecase.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := uc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentDeleteRunsCallbackAfterSuccess(t *testing.T) {
	repo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(repo, testLogger())

	repo.On("Delete", mock.Anything, 1).Return(nil)

	called := false
	err := uc.Delete(context.Background(), 1, func() { called = true })
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommentDeleteSkipsCallbackOnFailure(t *testing.T) {
	repo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(repo, testLogger())

	repo.On("Delete", mock.Anything, 1).Return(&domain.APIError{ResultCode: "HTTP_500", Msg: "oops"})

	called := false
	err := uc.Delete(context.Background(), 1, func() { called = true })
	require.Error(t, err)
	assert.False(t, called)
}

func TestCommentVerifyPassword(t *testing.T) {
	repo := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(repo, testLogger())

	repo.On("VerifyPassword", mock.Anything, 1, "secret").Return(true, nil)
	repo.On("VerifyPassword", mock.Anything, 1, "wrong").Return(false, nil)

	ok, err := uc.VerifyPassword(context.Background(), 1, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.VerifyPassword(context.Background(), 1, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	// 空パスワードはリモートへ問い合わせない
	_, err = uc.VerifyPassword(context.Background(), 1, "")
	assert.ErrorIs(t, err, usecase.ErrInvalidPassword)
	repo.AssertNumberOfCalls(t, "VerifyPassword", 2)
}

func TestNormalizeTagString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"#夏", "#夏"},
		{"#夏#半袖", "#夏#半袖"},
		{"###", ""},
		{"# a # b #", "#a#b"},
		{"#dup#dup", "#dup"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, usecase.NormalizeTagString(tt.input), "input %q", tt.input)
	}
}
