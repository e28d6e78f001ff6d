package state

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// logCapacity bounds the session's recent-events log (§3).
const logCapacity = 8

// PendingAction is one party member's submitted action while the session
// waits to collect the rest of the party (§4.1 party mode).
type PendingAction struct {
	UserID   string
	Action   string // encoded by internal/action; kept opaque here
	Target   int
	TargetID string // HealAlly's user id target
	ItemID   string // UseItem's item id
	Sequence int
}

// PendingDestination records a travel move interrupted by a combat
// encounter, so it can be resumed once the fight resolves (§4.3).
type PendingDestination struct {
	Pos   Position
	Valid bool
}

// Session is one party's/solo player's authoritative game state (§3).
//
// Invariant: len(Log) <= logCapacity; pushing past capacity drops the
// oldest entry. Invariant: PendingActions keys are a subset of Party.
type Session struct {
	ID      uuid.UUID
	ShortID string

	OwnerID string
	Party   []string

	Mode  Mode
	Phase Phase

	CreatedAt    time.Time
	LastActionAt time.Time

	Turn int

	Players map[string]*PlayerState
	Enemies []EnemyState

	Room RoomState
	Map  *Map
	Pos  Position

	Log []string

	// PendingActions collects party-mode submissions until every living
	// member has acted or the party action timeout fires (§4.1).
	PendingActions map[string]PendingAction
	nextSequence   int

	// PendingDest is set when travel is interrupted by an encounter; the
	// pending move resumes once the encounter resolves (§4.3).
	PendingDest PendingDestination

	// ShowItems toggles the inventory panel on the rendered game card.
	ShowItems bool
}

// NewSession creates a session in PhaseExploring with a fresh UUID.
func NewSession(ownerID string, mode Mode) *Session {
	now := sessionNow()
	return &Session{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		Party:          []string{ownerID},
		Mode:           mode,
		Phase:          PhaseExploring,
		CreatedAt:      now,
		LastActionAt:   now,
		Players:        make(map[string]*PlayerState),
		Map:            NewMap(),
		PendingActions: make(map[string]PendingAction),
	}
}

// sessionNow exists so callers of NewSession never call time.Now() inside
// resolver code paths directly; the server wiring stamps times explicitly
// where determinism matters.
func sessionNow() time.Time { return time.Now() }

// PushLog appends an entry, dropping the oldest once at capacity.
func (s *Session) PushLog(entry string) {
	s.Log = append(s.Log, entry)
	if len(s.Log) > logCapacity {
		s.Log = s.Log[len(s.Log)-logCapacity:]
	}
}

// SubmitPendingAction records a party member's action for this turn and
// returns the sequence number it was assigned.
func (s *Session) SubmitPendingAction(userID, action string, target int) int {
	return s.SubmitPendingActionFull(PendingAction{UserID: userID, Action: action, Target: target})
}

// SubmitPendingActionFull records a fully-populated pending action
// (HealAlly's TargetID, UseItem's ItemID), assigning it the next
// insertion-order sequence number.
func (s *Session) SubmitPendingActionFull(pa PendingAction) int {
	seq := s.nextSequence
	s.nextSequence++
	pa.Sequence = seq
	s.PendingActions[pa.UserID] = pa
	return seq
}

// OrderedPendingActions returns every collected pending action sorted by
// submission sequence, so party-mode resolution runs actions in the
// order players actually submitted them (§9 "Pending actions ordering").
func (s *Session) OrderedPendingActions() []PendingAction {
	out := make([]PendingAction, 0, len(s.PendingActions))
	for _, pa := range s.PendingActions {
		out = append(out, pa)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out
}

// ClearPendingActions resets the collection for the next turn.
func (s *Session) ClearPendingActions() {
	s.PendingActions = make(map[string]PendingAction)
}

// AllLivingSubmitted reports whether every alive party member has a
// pending action recorded for the current turn.
func (s *Session) AllLivingSubmitted() bool {
	for _, uid := range s.Party {
		p, ok := s.Players[uid]
		if !ok || !p.Alive {
			continue
		}
		if _, submitted := s.PendingActions[uid]; !submitted {
			return false
		}
	}
	return true
}

// LivingPlayers returns the party members currently alive, in party order.
func (s *Session) LivingPlayers() []*PlayerState {
	out := make([]*PlayerState, 0, len(s.Party))
	for _, uid := range s.Party {
		if p, ok := s.Players[uid]; ok && p.Alive {
			out = append(out, p)
		}
	}
	return out
}

// AnyLiving reports whether at least one party member is alive.
func (s *Session) AnyLiving() bool {
	for _, uid := range s.Party {
		if p, ok := s.Players[uid]; ok && p.Alive {
			return true
		}
	}
	return false
}

// LivingEnemies returns pointers to the enemies still alive, in slice
// order, so it can be used directly as the AttackTarget candidate list.
func (s *Session) LivingEnemies() []*EnemyState {
	out := make([]*EnemyState, 0, len(s.Enemies))
	for i := range s.Enemies {
		if !s.Enemies[i].Dead() {
			out = append(out, &s.Enemies[i])
		}
	}
	return out
}

// AllEnemiesDead reports whether the current encounter is cleared.
func (s *Session) AllEnemiesDead() bool {
	for i := range s.Enemies {
		if !s.Enemies[i].Dead() {
			return false
		}
	}
	return true
}
