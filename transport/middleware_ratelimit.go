package transport

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-service/constant"
	redisrepo "github.com/muhammadheryan/inventory-service/repository/redis"
	"github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	"go.uber.org/zap"
)

// RateLimitMiddleware caps credential checks per client address. A limiter failure lets the
// request through so an unavailable Redis never blocks validation.
func RateLimitMiddleware(attemptRepo redisrepo.Repository, errs errorWriter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if attemptRepo == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter, err := attemptRepo.AllowAttempt(r.Context(), clientIP(r))
			if err != nil {
				logger.Error("[RateLimitMiddleware] err attemptRepo.AllowAttempt", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				seconds := int(retryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				errs.write(w, r, r.Method+" "+r.URL.Path, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
