package common

import (
	"errors"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation"
	ErrorCodeNotFound   ErrorCode = "not_found"
	// ErrorCodeStorage 存储后端写入失败，此时数据库没有任何残留记录
	ErrorCodeStorage ErrorCode = "storage"
	// ErrorCodePersistence 后端写入成功后数据库落库失败，后端里会留下孤儿文件
	ErrorCodePersistence ErrorCode = "persistence"
	ErrorCodeInternal    ErrorCode = "internal"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

func NewStorageError(message string) error {
	return NewServiceError(ErrorCodeStorage, message)
}

func NewPersistenceError(message string) error {
	return NewServiceError(ErrorCodePersistence, message)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// HTTPStatus 将错误码映射为 HTTP 状态码，同时也是响应包裹里的 code 字段。
func (e *ServiceError) HTTPStatus() int {
	switch e.Code {
	case ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
