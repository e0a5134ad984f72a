package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestWithRequestIDRecoversPanic(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "panic before writing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError) + "\n",
		},
		{
			name: "panic after headers",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusAccepted)
				panic("boom")
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "",
		},
		{
			name: "panic after body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("partial"))
				panic("boom")
			},
			wantStatus: http.StatusOK,
			wantBody:   "partial",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			withRequestID(zap.NewNop(), tc.handler).ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if rr.Body.String() != tc.wantBody {
				t.Fatalf("expected body %q, got %q", tc.wantBody, rr.Body.String())
			}
			if strings.TrimSpace(rr.Header().Get(RequestIDHeader)) == "" {
				t.Fatal("expected a request ID header")
			}
		})
	}
}
