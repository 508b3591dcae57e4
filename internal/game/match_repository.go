package game

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
)

const activePairClause = "status = ? AND ((player_x_id = ? AND player_o_id = ?) OR (player_x_id = ? AND player_o_id = ?))"

type MatchRepository interface {
	GetMatch(ctx context.Context, matchID uint64) (*database.Match, error)
	// FindActiveBetween returns nil when the pair has no ACTIVE match.
	FindActiveBetween(ctx context.Context, userID, otherID uint64) (*database.Match, error)
	ListByPlayer(ctx context.Context, userID uint64) ([]*database.Match, error)
	// UpdateState writes board, turn, status and winner only if the stored
	// board still equals prevBoard and the match is still ACTIVE.
	UpdateState(ctx context.Context, m *database.Match, prevBoard string) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) GetMatch(ctx context.Context, matchID uint64) (*database.Match, error) {
	var m database.Match
	if err := r.db.WithContext(ctx).Where("id = ?", matchID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) FindActiveBetween(ctx context.Context, userID, otherID uint64) (*database.Match, error) {
	var matches []*database.Match
	err := r.db.WithContext(ctx).
		Where(activePairClause, database.MatchActive, userID, otherID, otherID, userID).
		Limit(1).
		Find(&matches).Error
	if err != nil {
		return nil, errors.Wrap(err, "find active match")
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (r *matchRepository) ListByPlayer(ctx context.Context, userID uint64) ([]*database.Match, error) {
	var matches []*database.Match
	err := r.db.WithContext(ctx).
		Where("player_x_id = ? OR player_o_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&matches).Error
	return matches, errors.Wrap(err, "list matches")
}

func (r *matchRepository) UpdateState(ctx context.Context, m *database.Match, prevBoard string) error {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&database.Match{}).
		Where("id = ? AND board = ? AND status = ?", m.ID, prevBoard, database.MatchActive).
		Updates(map[string]interface{}{
			"board":      m.Board,
			"turn":       m.Turn,
			"status":     m.Status,
			"winner_id":  m.WinnerID,
			"updated_at": now,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update match")
	}
	if res.RowsAffected == 0 {
		return database.ErrStaleRow
	}
	m.UpdatedAt = now
	return nil
}
