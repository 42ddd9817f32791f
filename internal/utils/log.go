package utils

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// NovoLogger cria um logger slog em texto com o nível informado (DEBUG, INFO, WARN, ERROR).
func NovoLogger(w io.Writer, nivel string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseNivel(nivel)}))
}

// ParseNivel converte o texto do LOG_LEVEL; valores desconhecidos viram INFO.
func ParseNivel(nivel string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(nivel)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MiddlewareLog registra método, caminho, status e duração de cada requisição.
func MiddlewareLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("requisição",
				"metodo", r.Method,
				"caminho", r.URL.Path,
				"status", rec.status,
				"duracao", time.Since(inicio),
			)
		})
	}
}
