package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/config"
)

const presenceTimeout = 2 * time.Second

// SocketTokenVerifier is satisfied by *common.TokenManager.
type SocketTokenVerifier interface {
	VerifySocketToken(token string) (*common.SocketClaims, error)
}

// Presence mirrors registry membership somewhere other processes can see it.
type Presence interface {
	SetOnline(ctx context.Context, userID uint64) error
	SetOffline(ctx context.Context, userID uint64) error
}

// Handshake upgrades GET /ws?token=... into a registered connection.
type Handshake struct {
	registry *Registry
	tokens   SocketTokenVerifier
	presence Presence
	log      *slog.Logger

	// per user; keeps registry membership and the presence write in step
	userLocks *common.KeyedMutex

	upgrader       websocket.Upgrader
	sendBuffer     int
	maxMessageSize int64
}

func NewHandshake(registry *Registry, tokens SocketTokenVerifier, presence Presence, cfg *config.Config, log *slog.Logger) *Handshake {
	sendBuffer := cfg.Realtime.SendBuffer
	if sendBuffer <= 0 {
		sendBuffer = 256
	}
	maxMessageSize := cfg.Realtime.MaxMessageSize
	if maxMessageSize <= 0 {
		maxMessageSize = 512
	}

	return &Handshake{
		registry:  registry,
		tokens:    tokens,
		presence:  presence,
		log:       log.With("component", "ws"),
		userLocks: common.NewKeyedMutex(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.Server.AllowedOrigins),
		},
		sendBuffer:     sendBuffer,
		maxMessageSize: maxMessageSize,
	}
}

// ServeWS verifies the handshake token after the upgrade. An invalid token
// gets the socket closed with no payload.
func (h *Handshake) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", "error", err)
		return
	}

	claims, err := h.tokens.VerifySocketToken(r.URL.Query().Get("token"))
	if err != nil {
		h.log.Debug("handshake rejected", "remote", r.RemoteAddr, "error", err)
		conn.Close()
		return
	}

	client := newClient(conn, claims.UserID, h.sendBuffer)
	h.attach(claims.UserID, client)
	h.log.Info("client connected", "user_id", claims.UserID, "conn_id", client.ID())

	var once sync.Once
	release := func() {
		once.Do(func() {
			client.Close()
			conn.Close()
			h.detach(claims.UserID, client)
			h.log.Info("client disconnected", "user_id", claims.UserID, "conn_id", client.ID())
		})
	}

	go client.writePump(release)
	go client.readPump(h.maxMessageSize, release)
}

func (h *Handshake) attach(userID uint64, c Conn) {
	unlock := h.userLocks.Lock(userLockKey(userID))
	defer unlock()
	if h.registry.Register(userID, c) {
		h.setPresence(userID, true)
	}
}

func (h *Handshake) detach(userID uint64, c Conn) {
	unlock := h.userLocks.Lock(userLockKey(userID))
	defer unlock()
	if h.registry.Deregister(userID, c) {
		h.setPresence(userID, false)
	}
}

func userLockKey(userID uint64) string {
	return fmt.Sprintf("ws-user:%d", userID)
}

func (h *Handshake) setPresence(userID uint64, online bool) {
	if h.presence == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
	defer cancel()

	var err error
	if online {
		err = h.presence.SetOnline(ctx, userID)
	} else {
		err = h.presence.SetOffline(ctx, userID)
	}
	if err != nil {
		h.log.Warn("presence update failed", "user_id", userID, "online", online, "error", err)
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
