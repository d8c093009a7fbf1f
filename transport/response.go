package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/muhammadheryan/inventory-service/constant"
	utilsContext "github.com/muhammadheryan/inventory-service/utils/context"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body written for failures that reach the catch-all.
type ErrorResponse struct {
	Error string `json:"error"`
	Stack string `json:"stack,omitempty"`
}

// panicError carries a recovered panic value and the stack it was raised on.
type panicError struct {
	value any
	stack []byte
}

func (p panicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func writeSuccess(w http.ResponseWriter, body any) {
	writeJSON(w, http.StatusOK, body)
}

func writeConfirmation(w http.ResponseWriter, msg string) {
	writeText(w, http.StatusOK, msg)
}

// errorWriter is the single place errors become HTTP responses. Errors the application
// already classified (conflict, not found, bad credentials) keep their status and message;
// everything else is answered with a 500 whose detail depends on development mode.
type errorWriter struct {
	development bool
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, location string, err error) {
	fields := []zap.Field{
		zap.String("location", location),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("error", describe(err)),
	}
	if id, ok := utilsContext.GetRequestID(r.Context()); ok {
		fields = append(fields, zap.String("request_id", id))
	}

	var ce cerr.CustomError
	if errors.As(err, &ce) && ce.ErrorHTTPCode() != http.StatusInternalServerError {
		logger.Warn("["+location+"] request failed", fields...)
		writeText(w, ce.ErrorHTTPCode(), ce.Error())
		return
	}

	var pe panicError
	if errors.As(err, &pe) {
		fields = append(fields, zap.ByteString("stack", pe.stack))
	}
	logger.Error("["+location+"] unexpected error", fields...)

	if !e.development {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: constant.GenericErrorMessage})
		return
	}

	res := ErrorResponse{Error: describe(err)}
	if errors.As(err, &pe) {
		res.Stack = string(pe.stack)
	} else {
		res.Stack = chain(err)
	}
	writeJSON(w, http.StatusInternalServerError, res)
}

// describe prefers the underlying cause of an internal CustomError over its generic message.
func describe(err error) string {
	var ce cerr.CustomError
	if errors.As(err, &ce) && ce.Cause() != nil {
		return ce.Cause().Error()
	}
	return err.Error()
}

// chain lists every error in the wrap chain with its concrete type, outermost first.
func chain(err error) string {
	var lines []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		lines = append(lines, fmt.Sprintf("%T: %s", e, e.Error()))
	}
	return strings.Join(lines, "\n")
}
