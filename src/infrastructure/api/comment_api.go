package api

import (
	"context"
	"fmt"

	"wearlog/src/domain"
	"wearlog/src/query"
)

const commentsPath = "/api/v1/comments"

// CommentAPI implements domain.CommentRepository over the remote REST API
type CommentAPI struct {
	client *Client
}

// NewCommentAPI creates a comment repository backed by the remote API
func NewCommentAPI(client *Client) domain.CommentRepository {
	return &CommentAPI{client: client}
}

// List retrieves one page of comments for (page, filter)
func (r *CommentAPI) List(ctx context.Context, page int, filter domain.CommentFilter) (*domain.CommentPage, error) {
	params := query.BuildListQuery(page, filter)

	var result domain.CommentPage
	if err := r.client.Get(ctx, commentsPath, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByID retrieves a single comment
func (r *CommentAPI) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.client.Get(ctx, fmt.Sprintf("%s/%d", commentsPath, id), nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// createCommentBody はコメント作成エンドポイントのリクエストボディ
type createCommentBody struct {
	Email                string  `json:"email"`
	Password             string  `json:"password"`
	Title                string  `json:"title"`
	Sentence             string  `json:"sentence"`
	TagString            string  `json:"tagString,omitempty"`
	ImageURL             string  `json:"imageUrl,omitempty"`
	Location             string  `json:"location"`
	Date                 string  `json:"date"`
	FeelsLikeTemperature float64 `json:"feelsLikeTemperature"`
}

// Create submits a new comment and returns the created record
func (r *CommentAPI) Create(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error) {
	body := createCommentBody{
		Email:                req.Email,
		Password:             req.Password,
		Title:                req.Title,
		Sentence:             req.Sentence,
		TagString:            req.TagString,
		ImageURL:             req.ImageURL,
		Location:             req.Location,
		Date:                 req.Date,
		FeelsLikeTemperature: req.FeelsLikeTemperature,
	}

	var comment domain.Comment
	if err := r.client.Post(ctx, commentsPath, body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment
func (r *CommentAPI) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("%s/%d", commentsPath, id))
}

// verifyPasswordResponse は {resultCode, msg, data} 封筒の成功形
type verifyPasswordResponse struct {
	ResultCode string `json:"resultCode"`
	Msg        string `json:"msg"`
	Data       bool   `json:"data"`
}

// VerifyPassword asks the backend to check the comment password
func (r *CommentAPI) VerifyPassword(ctx context.Context, id int, password string) (bool, error) {
	body := map[string]string{"password": password}

	var result verifyPasswordResponse
	if err := r.client.Post(ctx, fmt.Sprintf("%s/%d/verify-password", commentsPath, id), body, &result); err != nil {
		return false, err
	}
	return result.Data, nil
}
