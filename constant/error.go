package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrProductExists
	ErrProductNotFound
	ErrUserExists
	ErrUserNotFound
	ErrInvalidCredential
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrProductExists:     "a product with that ean13 already exists",
	ErrProductNotFound:   "product not found",
	ErrUserExists:        "a user with that userid already exists",
	ErrUserNotFound:      "user not found",
	ErrInvalidCredential: "invalid userid or password",
	ErrTooManyRequests:   "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrProductExists:     http.StatusConflict,
	ErrProductNotFound:   http.StatusNotFound,
	ErrUserExists:        http.StatusConflict,
	ErrUserNotFound:      http.StatusNotFound,
	ErrInvalidCredential: http.StatusUnauthorized,
	ErrTooManyRequests:   http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrProductExists:     "0005",
	ErrProductNotFound:   "0006",
	ErrUserExists:        "0007",
	ErrUserNotFound:      "0008",
	ErrInvalidCredential: "0009",
	ErrTooManyRequests:   "0010",
}

// GenericErrorMessage is returned to callers for unexpected failures outside development.
const GenericErrorMessage = "an unexpected error occurred, please try again later"
