// Package server assembles the HTTP surface: REST API, websocket endpoint,
// CORS and request logging.
package server

import (
	"bufio"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"

	chathandler "github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/chat/handler"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/config"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/game"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/realtime"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/user"
)

const requestIDHeader = "X-Request-ID"

type Handlers struct {
	User      *user.Handler
	Game      *game.Handler
	Chat      *chathandler.ChatHandler
	Handshake *realtime.Handshake
}

// NewRouter mounts every route. Everything under /api/v1 except the auth
// endpoints requires a session token.
func NewRouter(cfg *config.Config, tokens common.TokenValidator, h Handlers, log *slog.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(requestLogger(log))

	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc("/ws", h.Handshake.ServeWS).Methods(http.MethodGet)

	auth := common.AuthMiddleware(tokens)
	router.Handle("/ws-token", auth(http.HandlerFunc(h.User.SocketToken))).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	h.User.RegisterPublicRoutes(api)

	protected := api.NewRoute().Subrouter()
	protected.Use(auth)
	h.User.RegisterRoutes(protected)
	h.Game.RegisterRoutes(protected)
	h.Chat.RegisterRoutes(protected)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.Server.AllowedOrigins),
	})
	return c.Handler(router)
}

func NewHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:        handler,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "tictactoe"})
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// requestLogger tags each request with an id and logs it once it completes.
func requestLogger(log *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.Log(r.Context(), level, "http request",
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Hijack lets the websocket upgrader take over the connection.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}
