package user

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
)

// Handler adapts HTTP requests to the account and friend services.
type Handler struct {
	userService   UserService
	friendService FriendService
	log           *slog.Logger
}

func NewHandler(userService UserService, friendService FriendService, log *slog.Logger) *Handler {
	return &Handler{userService: userService, friendService: friendService, log: log}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string         `json:"token"`
	User  *database.User `json:"user"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type friendRequestBody struct {
	Username string `json:"username"`
}

// RegisterPublicRoutes mounts the endpoints that need no session.
func (h *Handler) RegisterPublicRoutes(r *mux.Router) {
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/me", h.Me).Methods(http.MethodGet)
	r.HandleFunc("/friends", h.ListFriends).Methods(http.MethodGet)
	r.HandleFunc("/friends/{userId}", h.RemoveFriend).Methods(http.MethodDelete)
	r.HandleFunc("/friend-requests", h.ListFriendRequests).Methods(http.MethodGet)
	r.HandleFunc("/friend-requests", h.SendFriendRequest).Methods(http.MethodPost)
	r.HandleFunc("/friend-requests/{id}/accept", h.AcceptFriendRequest).Methods(http.MethodPost)
	r.HandleFunc("/friend-requests/{id}/reject", h.RejectFriendRequest).Methods(http.MethodPost)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.RespondError(w, err)
		return
	}
	user, token, err := h.userService.RegisterUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.RespondError(w, err)
		return
	}
	user, token, err := h.userService.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, user)
}

// SocketToken serves GET /ws-token.
func (h *Handler) SocketToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	token, err := h.userService.IssueSocketToken(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	friends, err := h.friendService.ListFriends(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, friends)
}

func (h *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	friendID, err := common.PathID(r, "userId")
	if err != nil {
		common.RespondError(w, err)
		return
	}
	if err := h.friendService.RemoveFriend(r.Context(), userID, friendID); err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListFriendRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	incoming, err := h.friendService.ListIncomingRequests(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	outgoing, err := h.friendService.ListOutgoingRequests(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string][]RequestView{
		"incoming": incoming,
		"outgoing": outgoing,
	})
}

func (h *Handler) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	var body friendRequestBody
	if err := common.DecodeJSON(w, r, &body); err != nil {
		common.RespondError(w, err)
		return
	}
	req, err := h.friendService.SendFriendRequest(r.Context(), userID, body.Username)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, req)
}

func (h *Handler) AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	requestID, err := common.PathID(r, "id")
	if err != nil {
		common.RespondError(w, err)
		return
	}
	friendship, err := h.friendService.AcceptFriendRequest(r.Context(), userID, requestID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, friendship)
}

func (h *Handler) RejectFriendRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	requestID, err := common.PathID(r, "id")
	if err != nil {
		common.RespondError(w, err)
		return
	}
	if err := h.friendService.RejectFriendRequest(r.Context(), userID, requestID); err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
