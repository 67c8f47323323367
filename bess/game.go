package bess

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Game owns the current position of one Bess game and is the single writer
// that advances it. A Game is not safe for concurrent Apply/Undo; Position
// snapshots taken from it may be read concurrently.
type Game struct {
	id     uuid.UUID
	pos    *Position
	logger *zap.Logger
}

// GameOption configures a Game.
type GameOption func(*Game)

// WithLogger sets the logger for applied moves and game results.
func WithLogger(l *zap.Logger) GameOption {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithID overrides the generated game ID.
func WithID(id uuid.UUID) GameOption {
	return func(g *Game) { g.id = id }
}

// NewGame starts a game at pos.
func NewGame(pos *Position, opts ...GameOption) *Game {
	g := &Game{
		id:     uuid.New(),
		pos:    pos,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("game_id", g.id.String()))
	return g
}

func (g *Game) ID() uuid.UUID { return g.id }

// Position returns the current position.
func (g *Game) Position() *Position { return g.pos }

func (g *Game) Outcome() Outcome { return g.pos.Outcome() }

func (g *Game) History() []BanMove { return g.pos.History() }

// Apply plays m if it is legal in the current position.
func (g *Game) Apply(m BanMove) error {
	next, err := g.pos.Apply(m)
	if err != nil {
		g.logger.Debug("rejected move", zap.Stringer("move", m), zap.Error(err))
		return err
	}
	g.pos = next
	g.logger.Debug("applied move",
		zap.Stringer("move", m),
		zap.Int("ply", next.Ply()),
		zap.Stringer("ban", next.Ban()),
	)
	if o := next.Outcome(); o.Over() {
		g.logger.Info("game over",
			zap.Stringer("status", o.Status),
			zap.String("result", o.Result()),
		)
	}
	return nil
}

// ApplyUCI decodes s with ParseMove and plays it.
func (g *Game) ApplyUCI(s string) error {
	m, err := ParseMove(s)
	if err != nil {
		return err
	}
	return g.Apply(m)
}

// ApplyLine plays a whitespace separated move list. Decoding errors abort
// before any move is played; an illegal move stops the line and leaves the
// moves before it applied.
func (g *Game) ApplyLine(line string) error {
	moves, err := ParseMoves(line)
	if err != nil {
		return err
	}
	for i, m := range moves {
		if err := g.Apply(m); err != nil {
			return errors.WithMessagef(err, "ply %d", i+1)
		}
	}
	return nil
}

// Undo takes back the last ply.
func (g *Game) Undo() error {
	prev, err := g.pos.Undo()
	if err != nil {
		return err
	}
	last, _ := g.pos.LastMove()
	g.pos = prev
	g.logger.Debug("took back move",
		zap.Stringer("move", last),
		zap.Int("ply", prev.Ply()),
		zap.Stringer("ban", prev.Ban()),
	)
	return nil
}
