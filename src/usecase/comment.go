package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"wearlog/src/domain"

	"github.com/sirupsen/logrus"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrInvalidEmail     = errors.New("email is required")
	ErrInvalidPassword  = errors.New("password is required")
	ErrInvalidTitle     = errors.New("title is required and must be less than 200 characters")
	ErrInvalidSentence  = errors.New("sentence is required")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidLocation  = errors.New("location is required")
	ErrPasswordRejected = errors.New("password verification failed")
)

// CommentUsecase defines the business logic around a single comment
type CommentUsecase interface {
	Get(ctx context.Context, id int) (*domain.Comment, error)
	Create(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error)
	// Delete removes the comment and runs onSuccess only after the backend
	// has confirmed the deletion. 一覧側の状態はその場では触らず、
	// 遷移先の fetch-on-mount に任せる
	Delete(ctx context.Context, id int, onSuccess func()) error
	// VerifyPassword gates edit/delete actions behind a backend verdict
	VerifyPassword(ctx context.Context, id int, password string) (bool, error)
}

type commentUsecase struct {
	repo   domain.CommentRepository
	logger *logrus.Logger
}

// NewCommentUsecase creates a new comment usecase
func NewCommentUsecase(repo domain.CommentRepository, logger *logrus.Logger) CommentUsecase {
	return &commentUsecase{
		repo:   repo,
		logger: logger,
	}
}

// Get retrieves a comment by ID
func (u *commentUsecase) Get(ctx context.Context, id int) (*domain.Comment, error) {
	comment, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

// Create validates the request and submits a new comment
func (u *commentUsecase) Create(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error) {
	if err := u.validateCreateRequest(req); err != nil {
		return nil, err
	}

	req.TagString = NormalizeTagString(req.TagString)

	comment, err := u.repo.Create(ctx, req)
	if err != nil {
		u.logger.WithError(err).Error("コメントの作成に失敗")
		return nil, err
	}

	u.logger.WithField("comment_id", comment.ID).Info("コメントを作成しました")
	return comment, nil
}

// Delete deletes a comment after backend confirmation
func (u *commentUsecase) Delete(ctx context.Context, id int, onSuccess func()) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		u.logger.WithError(err).WithField("comment_id", id).Error("コメントの削除に失敗")
		return err
	}

	u.logger.WithField("comment_id", id).Info("コメントを削除しました")
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

// VerifyPassword asks the backend whether the password matches
func (u *commentUsecase) VerifyPassword(ctx context.Context, id int, password string) (bool, error) {
	if password == "" {
		return false, ErrInvalidPassword
	}

	ok, err := u.repo.VerifyPassword(ctx, id, password)
	if err != nil {
		u.logger.WithError(err).WithField("comment_id", id).Warn("パスワード検証に失敗")
		return false, err
	}
	return ok, nil
}

// validateCreateRequest validates create comment request
func (u *commentUsecase) validateCreateRequest(req domain.CreateCommentRequest) error {
	if req.Email == "" {
		return ErrInvalidEmail
	}
	if req.Password == "" {
		return ErrInvalidPassword
	}
	if req.Title == "" || len(req.Title) > 200 {
		return ErrInvalidTitle
	}
	if req.Sentence == "" {
		return ErrInvalidSentence
	}
	if req.Location == "" {
		return ErrInvalidLocation
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// NormalizeTagString normalizes a '#'-delimited tag string:
// 空タグと重複を除き、前後の空白を落とした上で '#' 区切りに組み直す
func NormalizeTagString(tagString string) string {
	if tagString == "" {
		return ""
	}

	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, tag := range strings.Split(tagString, "#") {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" && !seen[trimmed] {
			seen[trimmed] = true
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return ""
	}
	return "#" + strings.Join(result, "#")
}
