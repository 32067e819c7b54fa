package middleware

import (
	"wearlog/src/logger"
	"wearlog/src/service"

	"github.com/gin-gonic/gin"
)

// SessionCookieName 一覧セッショントークンを運ぶCookie名
const SessionCookieName = "wearlog_session"

// SessionKey gin.Context に格納するセッションIDのキー
const SessionKey = "session_id"

// SessionMiddleware ブラウザを一覧セッションへ結びつけるmiddleware。
// 有効なセッションCookieが無ければ新しいセッションを払い出す
func SessionMiddleware(sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cookie, err := c.Cookie(SessionCookieName); err == nil {
			if sessionID, err := sessions.ValidateToken(cookie); err == nil {
				c.Set(SessionKey, sessionID)
				c.Next()
				return
			}
			logger.WithField("client_ip", c.ClientIP()).Debug("無効なセッショントークンを再発行します")
		}

		token, sessionID, err := sessions.IssueToken()
		if err != nil {
			logger.WithField("client_ip", c.ClientIP()).WithField("error", err.Error()).Error("セッショントークンの発行に失敗")
			c.AbortWithStatus(500)
			return
		}

		c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// SessionID retrieves the session ID attached by SessionMiddleware
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
