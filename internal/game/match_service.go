package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/apperr"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/common"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/dbmongo"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/realtime"
)

const historyLimit = 50

// Notifier is satisfied by *realtime.Notifier.
type Notifier interface {
	Notify(userID uint64, event string, data interface{})
}

type UserLookup interface {
	GetUserByID(ctx context.Context, userID uint64) (*database.User, error)
	GetUsersByIDs(ctx context.Context, userIDs []uint64) ([]*database.User, error)
}

// ChatCloser destroys the chat attached to a match.
type ChatCloser interface {
	Teardown(ctx context.Context, matchID uint64) error
}

type Archiver interface {
	Archive(ctx context.Context, rec *dbmongo.MatchRecord) error
	History(ctx context.Context, userID uint64, limit int64) ([]*dbmongo.MatchRecord, error)
}

// NoopArchiver is used when the MongoDB archive is disabled.
type NoopArchiver struct{}

func (NoopArchiver) Archive(context.Context, *dbmongo.MatchRecord) error { return nil }

func (NoopArchiver) History(context.Context, uint64, int64) ([]*dbmongo.MatchRecord, error) {
	return nil, nil
}

type PlayerView struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type MatchView struct {
	ID         uint64     `json:"id"`
	PlayerX    PlayerView `json:"playerX"`
	PlayerO    PlayerView `json:"playerO"`
	Board      string     `json:"board"`
	Turn       string     `json:"turn"`
	Status     string     `json:"status"`
	WinnerID   *uint64    `json:"winnerId,omitempty"`
	YourSymbol string     `json:"yourSymbol"`
	ChatID     *uint64    `json:"chatId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type MatchService interface {
	ApplyMove(ctx context.Context, matchID, userID uint64, cell int) (*MatchView, error)
	GetMatch(ctx context.Context, matchID, userID uint64) (*MatchView, error)
	ListMatches(ctx context.Context, userID uint64) ([]MatchView, error)
	History(ctx context.Context, userID uint64) ([]*dbmongo.MatchRecord, error)
}

type matchService struct {
	matchRepo MatchRepository
	users     UserLookup
	chats     ChatCloser
	archive   Archiver
	notifier  Notifier
	locks     *common.KeyedMutex
	log       *slog.Logger
}

func NewMatchService(matchRepo MatchRepository, users UserLookup, chats ChatCloser, archive Archiver, notifier Notifier, locks *common.KeyedMutex, log *slog.Logger) MatchService {
	if archive == nil {
		archive = NoopArchiver{}
	}
	return &matchService{
		matchRepo: matchRepo,
		users:     users,
		chats:     chats,
		archive:   archive,
		notifier:  notifier,
		locks:     locks,
		log:       log.With("component", "matches"),
	}
}

// MatchLockKey names the lock that serializes every write to one match.
func MatchLockKey(matchID uint64) string {
	return fmt.Sprintf("match:%d", matchID)
}

func (s *matchService) ApplyMove(ctx context.Context, matchID, userID uint64, cell int) (*MatchView, error) {
	unlock := s.locks.Lock(MatchLockKey(matchID))
	defer unlock()

	m, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status != database.MatchActive {
		return nil, apperr.Conflict(apperr.ReasonMatchOver, "match is over")
	}
	if !m.HasPlayer(userID) {
		return nil, apperr.NotFound("match not found")
	}

	board, err := ParseBoard(m.Board)
	if err != nil {
		return nil, apperr.Internal("corrupt board", err)
	}
	turn, err := ParseCell(m.Turn)
	if err != nil {
		return nil, apperr.Internal("corrupt turn", err)
	}
	mine := symbolFor(m, userID)
	if mine != turn {
		return nil, apperr.Conflict(apperr.ReasonNotYourTurn, "it is not your turn")
	}
	if cell < 0 || cell >= len(board) {
		return nil, apperr.Validation("cell must be between 0 and 8")
	}
	if board[cell] != Empty {
		return nil, apperr.Conflict(apperr.ReasonCellOccupied, "cell is already occupied")
	}

	board[cell] = mine
	next := *m
	next.Board = board.String()
	switch {
	case board.Winner() == mine:
		next.Status = database.MatchFinished
		winner := userID
		next.WinnerID = &winner
	case board.Full():
		next.Status = database.MatchDraw
	default:
		next.Turn = mine.Other().String()
	}

	err = s.matchRepo.UpdateState(ctx, &next, m.Board)
	if errors.Is(err, database.ErrStaleRow) {
		return nil, apperr.Conflict(apperr.ReasonStaleMatch, "match changed, reload and retry")
	}
	if err != nil {
		return nil, apperr.Internal("save move", err)
	}

	names := s.playerNames(ctx, &next)
	if next.IsTerminal() {
		s.finish(ctx, &next, board, names)
	}

	s.notifier.Notify(next.Opponent(userID), realtime.EventGameMove, realtime.GameMoveEvent{
		GameID:           next.ID,
		OpponentUsername: names[userID],
	})
	return s.view(&next, userID, names), nil
}

func (s *matchService) GetMatch(ctx context.Context, matchID, userID uint64) (*MatchView, error) {
	m, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasPlayer(userID) {
		return nil, apperr.NotFound("match not found")
	}
	return s.view(m, userID, s.playerNames(ctx, m)), nil
}

func (s *matchService) ListMatches(ctx context.Context, userID uint64) ([]MatchView, error) {
	matches, err := s.matchRepo.ListByPlayer(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("list matches", err)
	}

	var ids []uint64
	seen := map[uint64]bool{}
	for _, m := range matches {
		for _, id := range []uint64{m.PlayerXID, m.PlayerOID} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	users, err := s.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Internal("load players", err)
	}
	names := make(map[uint64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	out := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		out = append(out, *s.view(m, userID, names))
	}
	return out, nil
}

func (s *matchService) History(ctx context.Context, userID uint64) ([]*dbmongo.MatchRecord, error) {
	records, err := s.archive.History(ctx, userID, historyLimit)
	if err != nil {
		return nil, apperr.Internal("load match history", err)
	}
	if records == nil {
		records = []*dbmongo.MatchRecord{}
	}
	return records, nil
}

func (s *matchService) loadMatch(ctx context.Context, matchID uint64) (*database.Match, error) {
	m, err := s.matchRepo.GetMatch(ctx, matchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("match not found")
	}
	if err != nil {
		return nil, apperr.Internal("load match", err)
	}
	return m, nil
}

// finish runs the terminal side effects. The move is already committed, so
// failures here are logged and never returned to the mover.
func (s *matchService) finish(ctx context.Context, m *database.Match, board Board, names map[uint64]string) {
	ctx = context.WithoutCancel(ctx)
	log := s.log.With("match_id", m.ID, "status", m.Status)

	if err := s.chats.Teardown(ctx, m.ID); err != nil {
		log.Warn("chat teardown failed", "error", err)
	} else {
		m.ChatID = nil
	}

	rec := &dbmongo.MatchRecord{
		MatchID:     m.ID,
		PlayerX:     m.PlayerXID,
		PlayerO:     m.PlayerOID,
		PlayerXName: names[m.PlayerXID],
		PlayerOName: names[m.PlayerOID],
		Board:       m.Board,
		Status:      m.Status,
		WinnerID:    m.WinnerID,
		Moves:       board.Filled(),
		StartedAt:   m.CreatedAt,
		FinishedAt:  m.UpdatedAt,
	}
	if err := s.archive.Archive(ctx, rec); err != nil {
		log.Warn("archive failed", "error", err)
	}
	log.Info("match finished")
}

func (s *matchService) playerNames(ctx context.Context, m *database.Match) map[uint64]string {
	names := map[uint64]string{}
	users, err := s.users.GetUsersByIDs(ctx, []uint64{m.PlayerXID, m.PlayerOID})
	if err != nil {
		s.log.Warn("cannot load players", "match_id", m.ID, "error", err)
		return names
	}
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names
}

func (s *matchService) view(m *database.Match, userID uint64, names map[uint64]string) *MatchView {
	return &MatchView{
		ID:         m.ID,
		PlayerX:    PlayerView{ID: m.PlayerXID, Username: names[m.PlayerXID]},
		PlayerO:    PlayerView{ID: m.PlayerOID, Username: names[m.PlayerOID]},
		Board:      m.Board,
		Turn:       m.Turn,
		Status:     m.Status,
		WinnerID:   m.WinnerID,
		YourSymbol: symbolFor(m, userID).String(),
		ChatID:     m.ChatID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func symbolFor(m *database.Match, userID uint64) Cell {
	if userID == m.PlayerXID {
		return X
	}
	return O
}
