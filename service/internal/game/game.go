// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/solitaire/engine"
	"github.com/sirupsen/logrus"
)

// ErrGameOver is returned for actions sent to a finished game.
var ErrGameOver = errors.New("game is over")

// OnGameEndFunc defines the signature for a callback function executed when a game ends.
type OnGameEndFunc func(gameID uuid.UUID, won bool, moves int)

// GameEventType represents the type of a game-related event broadcast to observers.
type GameEventType string

// Constants defining the various GameEvent types.
const (
	EventPickup      GameEventType = "pickup"       // Cards were lifted into the selection.
	EventPlace       GameEventType = "place"        // The selection was set down on a pile.
	EventCancel      GameEventType = "cancel"       // The selection went back to its source.
	EventSelect      GameEventType = "select"       // A quick move sent a card to a foundation.
	EventDeal        GameEventType = "deal"         // Cards were dealt from the stock.
	EventRecycle     GameEventType = "recycle"      // The waste was turned over into the stock.
	EventInvalidMove GameEventType = "invalid_move" // An action was refused; the board may have reset the selection.
	EventSyncState   GameEventType = "sync_state"   // Full board state.
	EventGameEnd     GameEventType = "game_end"     // Game has ended, includes results.
)

// EventCard identifies a card within a GameEvent payload.
type EventCard struct {
	ID   uuid.UUID `json:"id"`
	Rank string    `json:"rank,omitempty"`
	Suit string    `json:"suit,omitempty"`
}

// EventPile identifies a pile within a GameEvent payload.
type EventPile struct {
	Kind  string `json:"kind"`
	Index int    `json:"index"`
}

// GameEvent is the standard structure for broadcasting game state changes and actions.
type GameEvent struct {
	Type   GameEventType `json:"type"`
	GameID uuid.UUID     `json:"gameId"`
	From   *EventPile    `json:"from,omitempty"`  // Source pile of moved cards.
	To     *EventPile    `json:"to,omitempty"`    // Destination pile of moved cards.
	Cards  []EventCard   `json:"cards,omitempty"` // Cards moved, top first.

	Payload map[string]interface{} `json:"payload,omitempty"` // Additional arbitrary data.

	State *ObfGameState `json:"state,omitempty"` // Full obfuscated state for sync events.
}

// ActionRequest is an action as sent by a client, e.g. {"type":"pickup","pile":"tableau","index":3}.
type ActionRequest struct {
	Type  string `json:"type"`
	Pile  string `json:"pile,omitempty"`
	Index int    `json:"index,omitempty"`
}

// SolitaireGame represents the state and logic for a single solitaire session.
type SolitaireGame struct {
	ID uuid.UUID // Unique identifier for this game instance.

	Variant engine.Variant // Rules being played.
	Seed    uint64         // Shuffle seed of the deal.

	// Engine integration, the authoritative game state.
	Engine      *engine.Game
	CardTracker CardTracker // UUID tracking for all cards.

	// Game Lifecycle State
	StartedAt time.Time
	GameOver  bool // Has the game finished?

	actionIndex int // Sequential index for logging actions.

	Mu sync.Mutex // Mutex protecting concurrent access to game state.

	// Communication Callbacks
	BroadcastFn func(ev GameEvent) // Sends an event to all observers.
	OnGameEnd   OnGameEndFunc      // Callback executed when the game finishes.

	log *logrus.Entry
}

// NewSolitaireGame deals a new game of v shuffled by seed. A nil log uses the
// standard logrus logger.
func NewSolitaireGame(v engine.Variant, seed uint64, log *logrus.Entry) (*SolitaireGame, error) {
	eg, err := engine.NewGame(v, seed)
	if err != nil {
		return nil, fmt.Errorf("new %s game: %w", v.Name, err)
	}
	return newSession(eg, log), nil
}

// NewSolitaireGameFromLayout starts a session on an explicit board.
func NewSolitaireGameFromLayout(v engine.Variant, l engine.Layout, log *logrus.Entry) (*SolitaireGame, error) {
	eg, err := engine.NewGameFromLayout(v, l)
	if err != nil {
		return nil, fmt.Errorf("new %s game from layout: %w", v.Name, err)
	}
	return newSession(eg, log), nil
}

func newSession(eg *engine.Game, log *logrus.Entry) *SolitaireGame {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	id, _ := uuid.NewRandom()
	g := &SolitaireGame{
		ID:        id,
		Variant:   eg.Variant,
		Seed:      eg.Seed,
		Engine:    eg,
		StartedAt: time.Now(),
	}
	g.log = log.WithFields(logrus.Fields{
		"game_id": id.String(),
		"variant": eg.Variant.Name,
	})
	g.initCardTracker()
	g.log.WithField("seed", eg.Seed).Debug("game dealt")
	return g
}

// Apply performs one engine action and broadcasts its outcome. A refused move
// returns false with a nil error; errors signal a malformed action.
func (g *SolitaireGame) Apply(a engine.Action) (bool, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.applyLocked(a)
}

// applyLocked is Apply with the lock held by the caller.
func (g *SolitaireGame) applyLocked(a engine.Action) (bool, error) {
	if g.GameOver {
		g.log.WithField("action", a.String()).Debug("action ignored (game over)")
		return false, ErrGameOver
	}

	ok, err := g.applyEngineAction(a)
	if err != nil {
		g.log.WithError(err).WithField("action", a.String()).Warn("malformed action")
		return false, err
	}
	if g.Engine.IsDone() {
		g.endGame()
	}
	return ok, nil
}

// HandleRequest parses a client action and applies it.
func (g *SolitaireGame) HandleRequest(req ActionRequest) (bool, error) {
	a, err := ParseAction(req)
	if err != nil {
		g.log.WithError(err).WithField("type", req.Type).Warn("unparseable action")
		return false, err
	}
	return g.Apply(a)
}

// ParseAction converts a client request into an engine action. The pile is
// ignored for cancel.
func ParseAction(req ActionRequest) (engine.Action, error) {
	var a engine.Action
	switch strings.ToLower(req.Type) {
	case "pickup":
		a.Type = engine.ActionPickup
	case "place":
		a.Type = engine.ActionPlace
	case "cancel":
		return engine.Action{Type: engine.ActionCancel}, nil
	case "select":
		a.Type = engine.ActionSelect
	default:
		return a, fmt.Errorf("%w: %q", engine.ErrUnknownAction, req.Type)
	}
	kind, err := engine.ParsePileKind(req.Pile)
	if err != nil {
		return a, err
	}
	a.Kind = kind
	a.Index = req.Index
	return a, nil
}

// Stop ends the game without a win, e.g. when the player gives up.
func (g *SolitaireGame) Stop() {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if g.GameOver {
		return
	}
	g.Engine.Stop()
	g.endGame()
}

// Moves returns the number of successful moves so far.
func (g *SolitaireGame) Moves() int {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Engine.Moves()
}

// SyncState broadcasts the full board.
func (g *SolitaireGame) SyncState() {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	state := g.GetCurrentObfuscatedGameState()
	g.fireEvent(GameEvent{Type: EventSyncState, State: &state})
}

// fireEvent broadcasts an event via the BroadcastFn callback.
// Assumes lock is held by caller.
func (g *SolitaireGame) fireEvent(ev GameEvent) {
	ev.GameID = g.ID
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	} else {
		g.log.WithField("event", ev.Type).Trace("BroadcastFn is nil, event dropped")
	}
}

// endGame finalizes the game, broadcasts results, and triggers the OnGameEnd callback.
// Assumes lock is held by caller.
func (g *SolitaireGame) endGame() {
	if g.GameOver {
		g.log.Warn("endGame called, but game is already over")
		return
	}
	g.GameOver = true

	won := g.Engine.HasWon()
	moves := g.Engine.Moves()
	score := g.Engine.Score()

	g.logAction("game_end", map[string]interface{}{
		"won":   won,
		"moves": moves,
		"score": score,
	})
	g.fireEvent(GameEvent{
		Type: EventGameEnd,
		Payload: map[string]interface{}{
			"won":      won,
			"moves":    moves,
			"score":    score,
			"duration": time.Since(g.StartedAt).String(),
		},
	})

	if g.OnGameEnd != nil {
		g.OnGameEnd(g.ID, won, moves)
	}

	g.log.WithFields(logrus.Fields{
		"won":   won,
		"moves": moves,
		"score": score,
	}).Info("game ended")
}

// logAction records an action in the debug log with a sequential index.
// Assumes lock is held by caller.
func (g *SolitaireGame) logAction(actionType string, payload map[string]interface{}) {
	g.actionIndex++
	fields := logrus.Fields{
		"action_index": g.actionIndex,
		"action":       actionType,
	}
	for k, v := range payload {
		fields[k] = v
	}
	g.log.WithFields(fields).Debug("action")
}
