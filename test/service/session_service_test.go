package service_test

import (
	"context"
	"testing"
	"time"

	"wearlog/src/config"
	"wearlog/src/domain"
	"wearlog/src/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommentRepo struct{}

func (stubCommentRepo) List(ctx context.Context, page int, filter domain.CommentFilter) (*domain.CommentPage, error) {
	return &domain.CommentPage{Content: []domain.Comment{}}, nil
}

func (stubCommentRepo) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	return nil, nil
}

func (stubCommentRepo) Create(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error) {
	return nil, nil
}

func (stubCommentRepo) Delete(ctx context.Context, id int) error { return nil }

func (stubCommentRepo) VerifyPassword(ctx context.Context, id int, password string) (bool, error) {
	return false, nil
}

func newTestService(ttl time.Duration) service.SessionService {
	cfg := &config.Config{
		Session: config.SessionConfig{
			Secret: "test-secret",
			TTL:    ttl,
		},
	}
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return service.NewSessionService(cfg, stubCommentRepo{}, logger)
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	token, sessionID, err := svc.IssueToken()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, sessionID)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := newTestService(30 * time.Minute)
	token, _, err := issuer.IssueToken()
	require.NoError(t, err)

	other := service.NewSessionService(&config.Config{
		Session: config.SessionConfig{Secret: "different-secret", TTL: 30 * time.Minute},
	}, stubCommentRepo{}, logrus.New())

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestControllerIsPerSession(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	// 同じIDには同じコントローラ、異なるIDには別のコントローラ
	a := svc.Controller("session-a")
	assert.Same(t, a, svc.Controller("session-a"))

	b := svc.Controller("session-b")
	assert.NotSame(t, a, b)
}

func TestDiscard(t *testing.T) {
	svc := newTestService(30 * time.Minute)

	before := svc.Controller("session-a")
	svc.Discard("session-a")

	// 破棄後は新しいコントローラが作られる
	after := svc.Controller("session-a")
	assert.NotSame(t, before, after)
}
