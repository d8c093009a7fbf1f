package errors

import "github.com/muhammadheryan/inventory-service/constant"

type CustomError struct {
	errType constant.ErrorType
	cause   error
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Cause returns the underlying error, if any, that produced this CustomError.
func (c CustomError) Cause() error {
	return c.cause
}

func (c CustomError) Unwrap() error {
	return c.cause
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Wrap builds a CustomError that keeps err as its cause.
func Wrap(errorType constant.ErrorType, err error) CustomError {
	return CustomError{
		errType: errorType,
		cause:   err,
	}
}
