package transport

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns a panic anywhere below it into the catch-all error response.
// When the handler already started its response only the log entry is written.
func RecoveryMiddleware(errs errorWriter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tracked := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()
				if tracked.wroteHeader {
					logger.Error("["+r.Method+" "+r.URL.Path+"] panic after response started",
						zap.String("error", fmt.Sprint(rec)),
						zap.ByteString("stack", stack),
					)
					return
				}
				errs.write(w, r, r.Method+" "+r.URL.Path, panicError{value: rec, stack: stack})
			}()

			next.ServeHTTP(tracked, r)
		})
	}
}
