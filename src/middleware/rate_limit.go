package middleware

import (
	"wearlog/src/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware レート制限用のmiddleware
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// TODO: 将来的にここでレート制限機能を実装
		// バックエンドAPIへの過剰な中継を防ぐためのフック

		clientIP := c.ClientIP()

		logger.WithFields(logrus.Fields{
			"client_ip": clientIP,
			"method":    c.Request.Method,
			"uri":       c.Request.RequestURI,
		}).Debug("レート制限チェック中")

		c.Next()
	}
}
