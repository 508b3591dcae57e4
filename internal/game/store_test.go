package game

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/database"
	"github.com/AlejandroGuerraJimenez/TicTacToe-Backend/internal/dbmongo"
)

// memStore emulates the relational store, including the conditional writes
// the gorm repositories issue, so service tests can race real goroutines.
type memStore struct {
	mu          sync.Mutex
	nextID      uint64
	users       map[uint64]*database.User
	friends     map[[2]uint64]bool
	invitations map[uint64]*database.GameInvitation
	matches     map[uint64]*database.Match
}

func newMemStore(users ...*database.User) *memStore {
	s := &memStore{
		nextID:      100,
		users:       map[uint64]*database.User{},
		friends:     map[[2]uint64]bool{},
		invitations: map[uint64]*database.GameInvitation{},
		matches:     map[uint64]*database.Match{},
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *memStore) befriend(a, b uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.friends[[2]uint64{a, b}] = true
	s.friends[[2]uint64{b, a}] = true
}

func (s *memStore) unfriend(a, b uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.friends, [2]uint64{a, b})
	delete(s.friends, [2]uint64{b, a})
}

func (s *memStore) putMatch(m *database.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *m
	s.matches[m.ID] = &c
}

func (s *memStore) match(id uint64) *database.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *s.matches[id]
	return &c
}

func (s *memStore) matchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

func (s *memStore) invitationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.invitations)
}

func (s *memStore) GetUserByID(_ context.Context, userID uint64) (*database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *memStore) GetUsersByIDs(_ context.Context, userIDs []uint64) ([]*database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*database.User
	for _, id := range userIDs {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *memStore) CheckFriendshipExists(_ context.Context, userID, friendID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.friends[[2]uint64{userID, friendID}], nil
}

func (s *memStore) GetMatch(_ context.Context, matchID uint64) (*database.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.matches[matchID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *m
	return &c, nil
}

func (s *memStore) activeBetween(a, b uint64) *database.Match {
	for _, m := range s.matches {
		if m.Status == database.MatchActive && m.HasPlayer(a) && m.HasPlayer(b) {
			return m
		}
	}
	return nil
}

func (s *memStore) FindActiveBetween(_ context.Context, userID, otherID uint64) (*database.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m := s.activeBetween(userID, otherID); m != nil {
		c := *m
		return &c, nil
	}
	return nil, nil
}

func (s *memStore) ListByPlayer(_ context.Context, userID uint64) ([]*database.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*database.Match
	for _, m := range s.matches {
		if m.HasPlayer(userID) {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) UpdateState(_ context.Context, m *database.Match, prevBoard string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.matches[m.ID]
	if !ok || cur.Board != prevBoard || cur.Status != database.MatchActive {
		return database.ErrStaleRow
	}
	m.UpdatedAt = time.Now()
	c := *m
	s.matches[m.ID] = &c
	return nil
}

func (s *memStore) CreateInvitation(_ context.Context, inv *database.GameInvitation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	inv.ID = s.nextID
	inv.CreatedAt = time.Now()
	c := *inv
	s.invitations[inv.ID] = &c
	return nil
}

func (s *memStore) GetInvitation(_ context.Context, invitationID uint64) (*database.GameInvitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.invitations[invitationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *inv
	return &c, nil
}

func (s *memStore) FindPendingBetween(_ context.Context, userID, otherID uint64) (*database.GameInvitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invitations {
		if (inv.SenderID == userID && inv.ReceiverID == otherID) || (inv.SenderID == otherID && inv.ReceiverID == userID) {
			c := *inv
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) list(match func(*database.GameInvitation) bool) []*database.GameInvitation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*database.GameInvitation
	for _, inv := range s.invitations {
		if match(inv) {
			c := *inv
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) ListIncoming(_ context.Context, userID uint64) ([]*database.GameInvitation, error) {
	return s.list(func(inv *database.GameInvitation) bool { return inv.ReceiverID == userID }), nil
}

func (s *memStore) ListOutgoing(_ context.Context, userID uint64) ([]*database.GameInvitation, error) {
	return s.list(func(inv *database.GameInvitation) bool { return inv.SenderID == userID }), nil
}

func (s *memStore) AcceptInvitation(_ context.Context, inv *database.GameInvitation) (*database.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invitations[inv.ID]; !ok {
		return nil, database.ErrStaleRow
	}
	if s.activeBetween(inv.SenderID, inv.ReceiverID) != nil {
		return nil, database.ErrRelationExists
	}
	delete(s.invitations, inv.ID)

	s.nextID++
	now := time.Now()
	m := &database.Match{
		ID:        s.nextID,
		PlayerXID: inv.SenderID,
		PlayerOID: inv.ReceiverID,
		Board:     database.EmptyBoard,
		Turn:      X.String(),
		Status:    database.MatchActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c := *m
	s.matches[m.ID] = &c
	return m, nil
}

func (s *memStore) RejectInvitation(_ context.Context, invitationID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invitations[invitationID]; !ok {
		return database.ErrStaleRow
	}
	delete(s.invitations, invitationID)
	return nil
}

type sentEvent struct {
	userID uint64
	event  string
	data   interface{}
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []sentEvent
}

func (n *recordingNotifier) Notify(userID uint64, event string, data interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sentEvent{userID, event, data})
}

func (n *recordingNotifier) sent() []sentEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentEvent(nil), n.events...)
}

type mockChatCloser struct {
	mock.Mock
}

func (m *mockChatCloser) Teardown(ctx context.Context, matchID uint64) error {
	args := m.Called(ctx, matchID)
	return args.Error(0)
}

type mockArchiver struct {
	mock.Mock
}

func (m *mockArchiver) Archive(ctx context.Context, rec *dbmongo.MatchRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockArchiver) History(ctx context.Context, userID uint64, limit int64) ([]*dbmongo.MatchRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dbmongo.MatchRecord), args.Error(1)
}

var (
	alice = &database.User{ID: 1, Username: "alice"}
	bob   = &database.User{ID: 2, Username: "bob"}
	carol = &database.User{ID: 3, Username: "carol"}
)
