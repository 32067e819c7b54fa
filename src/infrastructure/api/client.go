package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wearlog/src/domain"

	"github.com/sirupsen/logrus"
)

// Client はバックエンドAPIへの全リクエストが通る共通のfetchラッパー。
// 非2xxレスポンスとトランスポート障害は domain.APIError (resultCode + msg)
// へ正規化され、呼び出し側は成功(デコード済みJSON)かAPIErrorかで分岐する。
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates an API client for the given backend base URL
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Get issues a GET request and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

// Post issues a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body interface{}, out interface{}) error {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &domain.APIError{ResultCode: "CLIENT_ERROR", Msg: err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return &domain.APIError{ResultCode: "CLIENT_ERROR", Msg: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"url":    requestURL,
		}).Warn("APIリクエストの送信に失敗")
		return &domain.APIError{ResultCode: "NETWORK_ERROR", Msg: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.APIError{ResultCode: "NETWORK_ERROR", Msg: err.Error()}
	}

	c.logger.WithFields(logrus.Fields{
		"method":      method,
		"url":         requestURL,
		"status_code": resp.StatusCode,
		"latency_ms":  time.Since(start).Milliseconds(),
	}).Debug("APIリクエスト完了")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.normalizeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &domain.APIError{ResultCode: "DECODE_ERROR", Msg: err.Error()}
		}
	}
	return nil
}

// normalizeError 非2xxレスポンスをAPIErrorへ変換する。
// エラー封筒がデコードできない場合はHTTPステータスから組み立てる
func (c *Client) normalizeError(statusCode int, data []byte) *domain.APIError {
	var envelope domain.APIError
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.ResultCode != "" {
		return &envelope
	}
	return &domain.APIError{
		ResultCode: fmt.Sprintf("HTTP_%d", statusCode),
		Msg:        http.StatusText(statusCode),
	}
}
