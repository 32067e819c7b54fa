package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wearlog/src/config"
	"wearlog/src/infrastructure/api"
	"wearlog/src/interface/handler"
	"wearlog/src/logger"
	"wearlog/src/routes"
	"wearlog/src/service"
	"wearlog/src/storage"
	"wearlog/src/usecase"
	"wearlog/src/validator"

	"github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"
)

func main() {
	// 設定を読み込み
	cfg := config.LoadConfig()

	// ロガーを初期化
	if err := logger.InitLogger(); err != nil {
		panic(fmt.Sprintf("ロガーの初期化に失敗: %v", err))
	}
	defer logger.CloseLogger()

	logger.Log.Info("アプリケーションを開始しています")

	// S3アップローダーを初期化（設定が有効な場合）
	var uploader *storage.Uploader
	if cfg.Log.UploadEnabled {
		s3Config := &storage.S3Config{
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			Region:          cfg.S3.Region,
			LogBucket:       cfg.S3.LogBucket,
			ImageBucket:     cfg.S3.ImageBucket,
			UseSSL:          cfg.S3.UseSSL,
		}

		var err error
		uploader, err = storage.NewUploader(s3Config, logger.Log)
		if err != nil {
			logger.Log.WithError(err).Error("S3アップローダーの初期化に失敗")
		} else {
			// 定期的なログアップロードを開始
			uploader.StartPeriodicUpload(cfg.Log.Directory, cfg.Log.UploadInterval, cfg.Log.UploadMaxAge)
		}
	}

	// バックエンドAPIクライアントとリポジトリを初期化
	client := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger.Log)
	commentRepo := api.NewCommentAPI(client)
	tripRepo := api.NewTripAPI(client)

	// ユースケースとサービスを初期化
	commentUsecase := usecase.NewCommentUsecase(commentRepo, logger.Log)
	planUsecase := usecase.NewPlanUsecase(tripRepo, logger.Log)
	sessions := service.NewSessionService(cfg, commentRepo, logger.Log)
	sessions.StartCleanup(cfg.Session.TTL / 2)

	// ハンドラーを初期化
	cv := validator.NewCustomValidator()
	commentHandler := handler.NewCommentHandler(sessions, commentUsecase, cv, uploader, logger.Log)
	planHandler := handler.NewPlanHandler(planUsecase, tripRepo, logger.Log)

	// Ginルーターを初期化
	r := gin.Default()

	// NoRouteハンドラー（404）
	r.NoRoute(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"uri":       c.Request.RequestURI,
			"client_ip": c.ClientIP(),
		}).Warn("404: ルートが見つかりません")
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	// NoMethodハンドラー（405）
	r.NoMethod(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"uri":       c.Request.RequestURI,
			"client_ip": c.ClientIP(),
		}).Warn("405: サポートされていないメソッド")
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// ヘルスチェック用のエンドポイント
	r.GET("/health", func(c *gin.Context) {
		logger.WithField("endpoint", "/health").Debug("ヘルスチェックエンドポイントにアクセス")
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
			"backend":   cfg.Backend.BaseURL,
		})
	})

	// APIルートを設定
	routes.SetupRoutes(r, sessions, commentHandler, planHandler)

	// グレースフルシャットダウンの設定
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Log.Info("シャットダウンシグナルを受信しました")

		// 最後のログアップロードを実行
		if uploader != nil {
			logger.Log.Info("最後のログアップロードを実行中...")
			if err := uploader.UploadOldLogs(cfg.Log.Directory, 0); err != nil {
				logger.Log.WithError(err).Error("最後のログアップロードに失敗")
			}
		}

		logger.CloseLogger()
		os.Exit(0)
	}()

	// サーバーを起動
	serverAddr := ":" + cfg.Server.Port
	logger.Log.WithField("port", cfg.Server.Port).Info("サーバーを開始します")

	if err := r.Run(serverAddr); err != nil {
		logger.Log.WithError(err).Fatal("サーバーの起動に失敗")
	}
}
