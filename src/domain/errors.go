package domain

import "fmt"

// APIError はバックエンドが返すエラー封筒 (resultCode + msg)
// 非2xxレスポンスとトランスポート障害は全てこの形に正規化される
type APIError struct {
	ResultCode string `json:"resultCode"`
	Msg        string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s : %s", e.ResultCode, e.Msg)
}

// AsAPIError はエラーをAPIErrorに変換する（既にAPIErrorならそのまま）
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return &APIError{ResultCode: "CLIENT_ERROR", Msg: err.Error()}
}
