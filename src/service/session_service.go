package service

import (
	"fmt"
	"sync"
	"time"

	"wearlog/src/config"
	"wearlog/src/domain"
	"wearlog/src/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionClaims JWT内のカスタムクレーム
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionService はブラウザと一覧セッションを結びつけるサービス。
// 署名付きトークンがセッションIDを運び、IDごとにListControllerを1つ保持する。
// セッションは期限切れで破棄され、プロセスを跨いで永続化されない
type SessionService interface {
	IssueToken() (token string, sessionID string, err error)
	ValidateToken(tokenString string) (string, error)
	Controller(sessionID string) *usecase.ListController
	Discard(sessionID string)
	StartCleanup(interval time.Duration)
}

type sessionEntry struct {
	controller *usecase.ListController
	lastSeen   time.Time
}

type sessionService struct {
	cfg    *config.Config
	repo   domain.CommentRepository
	logger *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewSessionService セッション管理サービスを作成
func NewSessionService(cfg *config.Config, repo domain.CommentRepository, logger *logrus.Logger) SessionService {
	return &sessionService{
		cfg:      cfg,
		repo:     repo,
		logger:   logger,
		sessions: make(map[string]*sessionEntry),
	}
}

// IssueToken 新しいセッションIDを払い出してトークンに署名する
func (s *sessionService) IssueToken() (string, string, error) {
	sessionID := uuid.NewString()

	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.Session.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "wearlog",
			Subject:   fmt.Sprintf("session:%s", sessionID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}

// ValidateToken トークンを検証してセッションIDを返す
func (s *sessionService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Session.Secret), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		if claims.SessionID == "" {
			return "", fmt.Errorf("invalid session token")
		}
		return claims.SessionID, nil
	}
	return "", fmt.Errorf("invalid session token")
}

// Controller セッションの一覧コントローラを取得する（無ければ作成）
func (s *sessionService) Controller(sessionID string) *usecase.ListController {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{
			controller: usecase.NewListController(s.repo, s.logger),
		}
		s.sessions[sessionID] = entry
		s.logger.WithField("session_id", sessionID).Info("一覧セッションを作成しました")
	}
	entry.lastSeen = time.Now()
	return entry.controller
}

// Discard セッションを即座に破棄する
func (s *sessionService) Discard(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; ok {
		delete(s.sessions, sessionID)
		s.logger.WithField("session_id", sessionID).Info("一覧セッションを破棄しました")
	}
}

// StartCleanup 期限切れセッションの定期的な破棄を開始
func (s *sessionService) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			s.pruneExpired()
		}
	}()
}

func (s *sessionService) pruneExpired() {
	cutoff := time.Now().Add(-s.cfg.Session.TTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			s.logger.WithField("session_id", id).Debug("期限切れセッションを破棄しました")
		}
	}
}
