package transport

import (
	"net/http"

	"github.com/muhammadheryan/inventory-service/utils/logger"
	"go.uber.org/zap"
)

// Debug mirrors GET /products and dumps the rows to the log. Only routed in development.
func (s *RestHandler) Debug(w http.ResponseWriter, r *http.Request) {
	items, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		s.errors.write(w, r, "GET /debug", err)
		return
	}

	logger.Debug("debug products", zap.Int("count", len(items)), zap.Any("products", items))
	writeSuccess(w, items)
}
