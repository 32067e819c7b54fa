package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"wearlog/src/domain"
	"wearlog/src/middleware"
	"wearlog/src/service"
	"wearlog/src/storage"
	"wearlog/src/theme"
	"wearlog/src/usecase"
	"wearlog/src/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 画像アップロードの上限サイズ
const maxImageSize = 5 << 20

// CommentHandler handles HTTP requests for the comment list session
// and individual comment operations
type CommentHandler struct {
	sessions       service.SessionService
	commentUsecase usecase.CommentUsecase
	validator      *validator.CustomValidator
	uploader       *storage.Uploader
	logger         *logrus.Logger
}

// NewCommentHandler creates a new comment handler.
// uploader は S3 が無効な構成では nil になる
func NewCommentHandler(
	sessions service.SessionService,
	commentUsecase usecase.CommentUsecase,
	cv *validator.CustomValidator,
	uploader *storage.Uploader,
	logger *logrus.Logger,
) *CommentHandler {
	return &CommentHandler{
		sessions:       sessions,
		commentUsecase: commentUsecase,
		validator:      cv,
		uploader:       uploader,
		logger:         logger,
	}
}

// controller resolves the list controller bound to this browser session
func (h *CommentHandler) controller(c *gin.Context) *usecase.ListController {
	return h.sessions.Controller(middleware.SessionID(c))
}

// GetList returns the current list snapshot. 未ロードのセッションでは
// 初回フェッチを発行し、適用を待ってから返す（fetch-on-mount 相当）。
// ?page=N が付いていればそのページへ移動してから返す
func (h *CommentHandler) GetList(c *gin.Context) {
	ctrl := h.controller(c)

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponseDTO{
				Error:   "Invalid page",
				Message: "page must be a number",
			})
			return
		}
		<-ctrl.SetPage(c.Request.Context(), page)
	} else if ctrl.Snapshot().Items == nil {
		<-ctrl.Load(c.Request.Context())
	}

	c.JSON(http.StatusOK, toListSnapshotDTO(ctrl.Snapshot()))
}

// Reload re-fetches the current page with the committed filter set
func (h *CommentHandler) Reload(c *gin.Context) {
	ctrl := h.controller(c)
	<-ctrl.Reload(c.Request.Context())
	c.JSON(http.StatusOK, toListSnapshotDTO(ctrl.Snapshot()))
}

// NextPage advances to the next page. 次ページが無い場合は現状を返すだけ
func (h *CommentHandler) NextPage(c *gin.Context) {
	ctrl := h.controller(c)
	<-ctrl.NextPage(c.Request.Context())
	c.JSON(http.StatusOK, toListSnapshotDTO(ctrl.Snapshot()))
}

// PrevPage moves back one page
func (h *CommentHandler) PrevPage(c *gin.Context) {
	ctrl := h.controller(c)
	<-ctrl.PrevPage(c.Request.Context())
	c.JSON(http.StatusOK, toListSnapshotDTO(ctrl.Snapshot()))
}

// CommitFilters validates the staged filter inputs and applies them.
// 不正な入力項目は黙って除外されるためこのエンドポイントは 400 を返さない
func (h *CommentHandler) CommitFilters(c *gin.Context) {
	var req FilterStagingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("リクエストのバインドに失敗")
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	filter := usecase.ValidateStaging(usecase.FilterStaging{
		Location:             req.Location,
		FeelsLikeTemperature: req.FeelsLikeTemperature,
		Month:                req.Month,
	})

	ctrl := h.controller(c)
	<-ctrl.CommitFilters(c.Request.Context(), filter)
	c.JSON(http.StatusOK, toListSnapshotDTO(ctrl.Snapshot()))
}

// RemoveFilter drops a single committed predicate (フィルタチップの×ボタン)
func (h *CommentHandler) RemoveFilter(c *gin.Context) {
	key := domain.FilterKey(c.Param("key"))
	switch key {
	case domain.FilterLocation, domain.FilterFeelsLikeTemperature, domain.FilterMonth:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Unknown filter key",
			Message: string(key),
		})
		return
	}

	ctrl := h.controller(c)
	<-ctrl.RemoveFilter(c.Request.Context(), key)
	c.JSON(http.StatusOK, toListSnapshotDTO(ctrl.Snapshot()))
}

// ResetFilters clears every committed predicate
func (h *CommentHandler) ResetFilters(c *gin.Context) {
	ctrl := h.controller(c)
	<-ctrl.ResetFilters(c.Request.Context())
	c.JSON(http.StatusOK, toListSnapshotDTO(ctrl.Snapshot()))
}

// CreateComment creates a new comment and prepends it to the session's list
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("リクエストのバインドに失敗")
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.logger.WithError(err).Warn("コメント入力の検証に失敗")
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, ve)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	usecaseReq := domain.CreateCommentRequest{
		Email:                req.Email,
		Password:             req.Password,
		Title:                h.validator.SanitizeInput(req.Title),
		Sentence:             h.validator.SanitizeInput(req.Sentence),
		TagString:            h.validator.SanitizeTagString(req.TagString),
		ImageURL:             req.ImageURL,
		Location:             h.validator.SanitizeInput(req.Location),
		Date:                 req.Date,
		FeelsLikeTemperature: req.FeelsLikeTemperature,
	}

	comment, err := h.commentUsecase.Create(c.Request.Context(), usecaseReq)
	if err != nil {
		h.logger.WithError(err).Error("コメントの作成に失敗")

		status := http.StatusInternalServerError
		if err == usecase.ErrInvalidEmail || err == usecase.ErrInvalidPassword ||
			err == usecase.ErrInvalidTitle || err == usecase.ErrInvalidSentence ||
			err == usecase.ErrInvalidDate || err == usecase.ErrInvalidLocation {
			status = http.StatusBadRequest
		} else if isBackendError(err) {
			status = http.StatusBadGateway
		}

		c.JSON(status, ErrorResponseDTO{
			Error:   "Failed to create comment",
			Message: err.Error(),
		})
		return
	}

	// 楽観的更新: 再フェッチを待たずにセッションの一覧へ先頭挿入する
	h.controller(c).ApplyCreated(*comment)

	c.JSON(http.StatusCreated, toCommentDTO(*comment))
}

// GetComment returns one comment with its resolved theme for the detail view
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, err := h.validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid comment ID",
			Message: err.Error(),
		})
		return
	}

	comment, err := h.commentUsecase.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("comment_id", id).Error("コメントの取得に失敗")

		status := http.StatusInternalServerError
		if err == usecase.ErrCommentNotFound {
			status = http.StatusNotFound
		} else if isBackendError(err) {
			status = http.StatusBadGateway
		}

		c.JSON(status, ErrorResponseDTO{
			Error: "Failed to get comment",
		})
		return
	}

	resolved := theme.ForCondition(comment.WeatherInfo.Weather)
	c.JSON(http.StatusOK, CommentDetailDTO{
		CommentDTO:      toCommentDTO(*comment),
		BackgroundImage: resolved.BackgroundImage,
		CharacterImage:  theme.CharacterFor(comment.WeatherInfo.FeelsLikeTemperature, comment.WeatherInfo.Weather),
	})
}

// VerifyPassword asks the backend whether the password matches the comment
func (h *CommentHandler) VerifyPassword(c *gin.Context) {
	id, err := h.validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid comment ID",
			Message: err.Error(),
		})
		return
	}

	var req VerifyPasswordRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	ok, err := h.commentUsecase.VerifyPassword(c.Request.Context(), id, req.Password)
	if err != nil {
		h.logger.WithError(err).WithField("comment_id", id).Error("パスワード検証に失敗")

		status := http.StatusInternalServerError
		if isBackendError(err) {
			status = http.StatusBadGateway
		}

		c.JSON(status, ErrorResponseDTO{
			Error: "Failed to verify password",
		})
		return
	}

	c.JSON(http.StatusOK, VerifyPasswordResponseDTO{Verified: ok})
}

// DeleteComment deletes a comment after the password has been verified.
// 削除後の一覧状態はその場では更新せず、次の取得に任せる
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, err := h.validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid comment ID",
			Message: err.Error(),
		})
		return
	}

	var req VerifyPasswordRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid request format",
			Message: err.Error(),
		})
		return
	}

	ok, err := h.commentUsecase.VerifyPassword(c.Request.Context(), id, req.Password)
	if err != nil {
		h.logger.WithError(err).WithField("comment_id", id).Error("パスワード検証に失敗")
		c.JSON(http.StatusBadGateway, ErrorResponseDTO{
			Error: "Failed to verify password",
		})
		return
	}
	if !ok {
		c.JSON(http.StatusForbidden, ErrorResponseDTO{
			Error: "Password verification failed",
		})
		return
	}

	sessionID := middleware.SessionID(c)
	err = h.commentUsecase.Delete(c.Request.Context(), id, func() {
		h.logger.WithFields(logrus.Fields{
			"comment_id": id,
			"session_id": sessionID,
		}).Info("削除が確定しました")
	})
	if err != nil {
		h.logger.WithError(err).WithField("comment_id", id).Error("コメントの削除に失敗")

		status := http.StatusInternalServerError
		if isBackendError(err) {
			status = http.StatusBadGateway
		}

		c.JSON(status, ErrorResponseDTO{
			Error: "Failed to delete comment",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage stores a comment attachment and returns its public URL
func (h *CommentHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponseDTO{
			Error: "Image upload is not configured",
		})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Invalid upload",
			Message: "multipart field 'image' is required",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error: "Failed to read upload",
		})
		return
	}
	if len(data) > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponseDTO{
			Error: "Image is too large",
		})
		return
	}

	url, err := h.uploader.UploadImage(data, header.Filename)
	if err != nil {
		h.logger.WithError(err).Error("画像のアップロードに失敗")
		c.JSON(http.StatusBadRequest, ErrorResponseDTO{
			Error:   "Failed to upload image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, ImageUploadResponseDTO{ImageURL: url})
}

// isBackendError reports whether the error came from the backend API layer
func isBackendError(err error) bool {
	var apiErr *domain.APIError
	return errors.As(err, &apiErr)
}
