package storage

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// S3Config S3接続設定
type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	LogBucket       string
	ImageBucket     string
	UseSSL          bool
}

// Uploader はログファイルの退避とコメント画像のアップロードを担当
type Uploader struct {
	s3Client *s3.S3
	config   *S3Config
	logger   *logrus.Logger
}

// NewUploader S3アップローダーを作成
func NewUploader(config *S3Config, logger *logrus.Logger) (*Uploader, error) {
	// AWS設定
	awsConfig := &aws.Config{
		Region:           aws.String(config.Region),
		Credentials:      credentials.NewStaticCredentials(config.AccessKeyID, config.SecretAccessKey, ""),
		DisableSSL:       aws.Bool(!config.UseSSL),
		S3ForcePathStyle: aws.Bool(true), // MinIOなどのS3互換ストレージ用
	}

	// エンドポイントが指定されている場合（MinIOなど）
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
	}

	// セッションを作成
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("AWSセッションの作成に失敗: %v", err)
	}

	return &Uploader{
		s3Client: s3.New(sess),
		config:   config,
		logger:   logger,
	}, nil
}

// UploadImage コメント添付画像をアップロードして公開URLを返す。
// URLはそのまま Comment.ImageURL としてバックエンドへ送られる
func (u *Uploader) UploadImage(data []byte, originalName string) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("画像ファイルではありません: %s", contentType)
	}

	ext := filepath.Ext(originalName)
	objectKey := fmt.Sprintf("images/%s%s", uuid.NewString(), ext)

	_, err := u.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(u.config.ImageBucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]*string{
			"upload-time": aws.String(time.Now().Format(time.RFC3339)),
			"source":      aws.String("wearlog"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("画像のアップロードに失敗: %v", err)
	}

	u.logger.WithFields(logrus.Fields{
		"bucket":       u.config.ImageBucket,
		"key":          objectKey,
		"content_type": contentType,
		"size":         len(data),
	}).Info("画像をS3にアップロードしました")

	return fmt.Sprintf("%s/%s/%s", u.config.Endpoint, u.config.ImageBucket, objectKey), nil
}

// UploadLogFile ログファイルをS3にアップロード
func (u *Uploader) UploadLogFile(filePath string) error {
	// ファイルを開く
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("ファイルの読み込みに失敗: %v", err)
	}
	defer file.Close()

	fileName := filepath.Base(filePath)
	objectKey := fmt.Sprintf("logs/%s", fileName)

	// S3にアップロード
	_, err = u.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(u.config.LogBucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String("text/plain"),
		Metadata: map[string]*string{
			"upload-time": aws.String(time.Now().Format(time.RFC3339)),
			"source":      aws.String("wearlog"),
		},
	})
	if err != nil {
		return fmt.Errorf("S3アップロードに失敗: %v", err)
	}

	u.logger.WithFields(logrus.Fields{
		"file":   fileName,
		"bucket": u.config.LogBucket,
		"key":    objectKey,
	}).Info("ログファイルをS3にアップロードしました")

	return nil
}

// UploadOldLogs 古いログファイルをアップロードして削除
func (u *Uploader) UploadOldLogs(logDir string, maxAge time.Duration) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("ログディレクトリの読み取りに失敗: %v", err)
	}

	cutoffTime := time.Now().Add(-maxAge)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}

		filePath := filepath.Join(logDir, entry.Name())
		fileInfo, err := entry.Info()
		if err != nil {
			u.logger.WithError(err).WithField("file", entry.Name()).Error("ファイル情報の取得に失敗")
			continue
		}

		// ファイルが古い場合はアップロードして削除
		if fileInfo.ModTime().Before(cutoffTime) {
			if err := u.UploadLogFile(filePath); err != nil {
				u.logger.WithError(err).WithField("file", entry.Name()).Error("ログファイルのアップロードに失敗")
				continue
			}

			if err := os.Remove(filePath); err != nil {
				u.logger.WithError(err).WithField("file", entry.Name()).Error("ログファイルの削除に失敗")
			}
		}
	}

	return nil
}

// StartPeriodicUpload 定期的なログアップロードを開始
func (u *Uploader) StartPeriodicUpload(logDir string, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := u.UploadOldLogs(logDir, maxAge); err != nil {
				u.logger.WithError(err).Error("定期ログアップロードに失敗")
			}
		}
	}()

	u.logger.WithFields(logrus.Fields{
		"log_dir":  logDir,
		"interval": interval.String(),
		"max_age":  maxAge.String(),
	}).Info("定期ログアップロードを開始しました")
}
