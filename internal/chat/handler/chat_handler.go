// Package handler serves the match chat over HTTP. Live delivery goes through
// the websocket notifier.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/chat/service"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/realtime"
)

type ChatHandler struct {
	chatService service.ChatService
	log         *slog.Logger
}

func NewChatHandler(chatService service.ChatService, log *slog.Logger) *ChatHandler {
	return &ChatHandler{chatService: chatService, log: log}
}

type postMessageRequest struct {
	Content string `json:"content"`
}

type historyResponse struct {
	ChatID   uint64                        `json:"chatId"`
	GameID   uint64                        `json:"gameId"`
	Messages []realtime.ChatMessagePayload `json:"messages"`
}

func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/matches/{id:[0-9]+}/chat", h.GetChatHistory).Methods(http.MethodGet)
	r.HandleFunc("/matches/{id:[0-9]+}/chat", h.SendMessage).Methods(http.MethodPost)
}

func (h *ChatHandler) GetChatHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	matchID, err := common.PathID(r, "id")
	if err != nil {
		common.RespondError(w, err)
		return
	}

	chat, messages, err := h.chatService.History(r.Context(), matchID, userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, historyResponse{ChatID: chat.ID, GameID: matchID, Messages: messages})
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	matchID, err := common.PathID(r, "id")
	if err != nil {
		common.RespondError(w, err)
		return
	}
	var req postMessageRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.RespondError(w, err)
		return
	}

	msg, err := h.chatService.PostMessage(r.Context(), matchID, userID, req.Content)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, msg)
}
