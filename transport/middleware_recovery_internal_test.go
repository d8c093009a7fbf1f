package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// headerCounter counts WriteHeader calls reaching the underlying writer.
type headerCounter struct {
	*httptest.ResponseRecorder
	calls int
}

func (h *headerCounter) WriteHeader(code int) {
	h.calls++
	h.ResponseRecorder.WriteHeader(code)
}

func TestRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantCalls  int
	}{
		{
			name: "panic before writing",
			handler: func(http.ResponseWriter, *http.Request) {
				panic("boom")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"an unexpected error occurred, please try again later"}` + "\n",
			wantCalls:  1,
		},
		{
			name: "panic after headers were sent",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("partial"))
				panic("boom")
			},
			wantStatus: http.StatusOK,
			wantBody:   "partial",
			wantCalls:  1,
		},
		{
			name: "panic after an implicit header",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("partial"))
				panic("boom")
			},
			wantStatus: http.StatusOK,
			wantBody:   "partial",
			wantCalls:  0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := &headerCounter{ResponseRecorder: httptest.NewRecorder()}
			h := RecoveryMiddleware(errorWriter{})(tt.handler)

			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, tt.wantCalls, rec.calls)
		})
	}
}
