package registry

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nagrikmitra/mitra/auth"
)

// WithAuth wraps next with bearer-token authentication. Requests without
// a valid credential are rejected with 401 before any JSON-RPC handling
// runs.
func WithAuth(verifier auth.Verifier, logger *zap.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		credential, ok := bearerCredential(req)
		if !ok {
			logger.Warn("missing bearer credential", zap.String("remote", req.RemoteAddr))
			unauthorized(w)
			return
		}

		identity, err := verifier.Verify(req.Context(), credential)
		if err != nil {
			logger.Warn("credential rejected",
				zap.String("remote", req.RemoteAddr), zap.Error(err))
			unauthorized(w)
			return
		}

		logger.Debug("credential accepted", zap.String("client", identity.ClientID))
		next.ServeHTTP(w, req)
	})
}

func bearerCredential(req *http.Request) (string, bool) {
	header := req.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

// WithRequestLogging wraps next with per-request structured logging.
// Each request gets a generated ID so its log lines correlate.
func WithRequestLogging(logger *zap.Logger, next http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		logger.Info("request received",
			zap.String("requestId", requestID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path))

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, req)

		logger.Info("request completed",
			zap.String("requestId", requestID),
			zap.Int("status", recorder.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps the SSE transport working behind the logging middleware.
func (r *statusRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
