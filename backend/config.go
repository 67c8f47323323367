package backend

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"bess-engine/bess"
)

// Kind names a board implementation.
type Kind string

const (
	KindGoose  Kind = "goose"
	KindDragon Kind = "dragon"
)

// StartFEN is the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Config selects a board implementation and the starting position.
type Config struct {
	Kind Kind `json:"kind"`
	// FEN is a standard FEN, optionally followed by a ban field ("n", "-", ...).
	FEN string `json:"fen"`
}

func DefaultConfig() Config {
	return Config{
		Kind: KindGoose,
		FEN:  StartFEN,
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs error
	switch c.Kind {
	case KindGoose, KindDragon:
	default:
		errs = multierror.Append(errs, errors.Errorf("unknown board kind %q", c.Kind))
	}
	fen, _, err := bess.SplitBanField(c.FEN)
	if err != nil {
		errs = multierror.Append(errs, err)
	} else if err := checkFEN(fen); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

// New builds a board of the given kind from a standard FEN.
func New(kind Kind, fen string) (bess.Board, error) {
	switch kind {
	case KindGoose:
		return NewGoose(fen)
	case KindDragon:
		return NewDragon(fen)
	}
	return nil, errors.Errorf("unknown board kind %q", kind)
}

// Open builds the starting position described by c.
func Open(c Config) (*bess.Position, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return LoadPosition(c.Kind, c.FEN)
}

// LoadPosition reads a position written by bess.FormatPosition.
func LoadPosition(kind Kind, s string) (*bess.Position, error) {
	fen, ban, err := bess.SplitBanField(s)
	if err != nil {
		return nil, err
	}
	b, err := New(kind, fen)
	if err != nil {
		return nil, err
	}
	return bess.NewPosition(b, ban), nil
}
