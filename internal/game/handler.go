package game

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
)

type Handler struct {
	invitations InvitationService
	matches     MatchService
	log         *slog.Logger
}

func NewHandler(invitations InvitationService, matches MatchService, log *slog.Logger) *Handler {
	return &Handler{invitations: invitations, matches: matches, log: log}
}

type invitationBody struct {
	ReceiverID uint64 `json:"receiverId"`
}

type moveBody struct {
	Cell *int `json:"cell"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/game-invitations", h.ListInvitations).Methods(http.MethodGet)
	r.HandleFunc("/game-invitations", h.SendInvitation).Methods(http.MethodPost)
	r.HandleFunc("/game-invitations/{id:[0-9]+}/accept", h.AcceptInvitation).Methods(http.MethodPost)
	r.HandleFunc("/game-invitations/{id:[0-9]+}/reject", h.RejectInvitation).Methods(http.MethodPost)

	r.HandleFunc("/matches", h.ListMatches).Methods(http.MethodGet)
	r.HandleFunc("/matches/history", h.History).Methods(http.MethodGet)
	r.HandleFunc("/matches/{id:[0-9]+}", h.GetMatch).Methods(http.MethodGet)
	r.HandleFunc("/matches/{id:[0-9]+}/moves", h.Move).Methods(http.MethodPost)
}

func (h *Handler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	incoming, err := h.invitations.ListIncoming(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	outgoing, err := h.invitations.ListOutgoing(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string][]InvitationView{
		"incoming": incoming,
		"outgoing": outgoing,
	})
}

func (h *Handler) SendInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	var body invitationBody
	if err := common.DecodeJSON(w, r, &body); err != nil {
		common.RespondError(w, err)
		return
	}
	if body.ReceiverID == 0 {
		common.RespondError(w, apperr.Validation("receiverId is required"))
		return
	}
	inv, err := h.invitations.SendInvitation(r.Context(), userID, body.ReceiverID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, inv)
}

func (h *Handler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	invitationID, err := common.PathID(r, "id")
	if err != nil {
		common.RespondError(w, err)
		return
	}
	match, err := h.invitations.AcceptInvitation(r.Context(), userID, invitationID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, match)
}

func (h *Handler) RejectInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	invitationID, err := common.PathID(r, "id")
	if err != nil {
		common.RespondError(w, err)
		return
	}
	if err := h.invitations.RejectInvitation(r.Context(), userID, invitationID); err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	matches, err := h.matches.ListMatches(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, matches)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.RespondError(w, apperr.Unauthenticated("user not authenticated"))
		return
	}
	records, err := h.matches.History(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, records)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
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
	match, err := h.matches.GetMatch(r.Context(), matchID, userID)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, match)
}

func (h *Handler) Move(w http.ResponseWriter, r *http.Request) {
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
	var body moveBody
	if err := common.DecodeJSON(w, r, &body); err != nil {
		common.RespondError(w, err)
		return
	}
	if body.Cell == nil {
		common.RespondError(w, apperr.Validation("cell is required"))
		return
	}
	match, err := h.matches.ApplyMove(r.Context(), matchID, userID, *body.Cell)
	if err != nil {
		common.WriteError(w, r, h.log, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, match)
}
