package routes

import (
	"wearlog/src/interface/handler"
	"wearlog/src/middleware"
	"wearlog/src/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all UI-facing API routes
func SetupRoutes(r *gin.Engine, sessions service.SessionService, commentHandler *handler.CommentHandler, planHandler *handler.PlanHandler) {
	// パブリックルートのグループ化
	api := r.Group("/api")
	api.Use(middleware.LoggerMiddleware())
	api.Use(middleware.CORSMiddleware())
	api.Use(middleware.RateLimitMiddleware())

	// 一覧セッションに紐づくコメントAPIルート
	comments := api.Group("/comments")
	comments.Use(middleware.SessionMiddleware(sessions))
	{
		// 一覧セッションの操作
		comments.GET("", commentHandler.GetList)           // GET /api/comments
		comments.POST("/reload", commentHandler.Reload)    // POST /api/comments/reload
		comments.POST("/page/next", commentHandler.NextPage) // POST /api/comments/page/next
		comments.POST("/page/prev", commentHandler.PrevPage) // POST /api/comments/page/prev

		// 検索フィルタの操作
		comments.POST("/filters", commentHandler.CommitFilters)       // POST /api/comments/filters
		comments.DELETE("/filters", commentHandler.ResetFilters)      // DELETE /api/comments/filters
		comments.DELETE("/filters/:key", commentHandler.RemoveFilter) // DELETE /api/comments/filters/:key

		// コメントの基本操作
		comments.POST("", commentHandler.CreateComment)       // POST /api/comments
		comments.GET("/:id", commentHandler.GetComment)       // GET /api/comments/:id
		comments.DELETE("/:id", commentHandler.DeleteComment) // DELETE /api/comments/:id

		// パスワード検証（編集・削除の前段）
		comments.POST("/:id/verify-password", commentHandler.VerifyPassword) // POST /api/comments/:id/verify-password

		// 添付画像のアップロード
		comments.POST("/images", commentHandler.UploadImage) // POST /api/comments/images
	}

	// 旅行プラン検索ルート（セッション不要）
	plan := api.Group("/plan")
	{
		plan.GET("", planHandler.GetPlan)         // GET /api/plan
		plan.GET("/geocode", planHandler.Geocode) // GET /api/plan/geocode
	}

	// 天気テーマ解決
	api.GET("/themes", planHandler.GetTheme) // GET /api/themes
}
