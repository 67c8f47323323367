package bess

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoPly is the opening stub followed by a Black reply board with one pawn
// that can go e7-e5.
func twoPly(t *testing.T) *stubBoard {
	b := openingStub(t)
	b.next = newStub(Black).put(Pawn, sq(t, "e7"), sq(t, "e6"), sq(t, "e5"))
	return b
}

// plainBoard hides the optional interfaces of the wrapped board.
type plainBoard struct{ Board }

func TestApplySetsOpponentBan(t *testing.T) {
	root := NewPosition(twoPly(t), BanState{})
	next, err := root.Apply(mv(t, "e2e4:n"))
	require.NoError(t, err)

	assert.Equal(t, Black, next.SideToMove())
	assert.Equal(t, Knight, next.Ban().Get())
	assert.Equal(t, 1, next.Ply())
	last, ok := next.LastMove()
	require.True(t, ok)
	assert.Equal(t, mv(t, "e2e4:n"), last)

	// The root is untouched.
	assert.Equal(t, White, root.SideToMove())
	assert.False(t, root.Ban().Active())
	_, ok = root.LastMove()
	assert.False(t, ok)
}

func TestApplyRejects(t *testing.T) {
	p := NewPosition(twoPly(t), NewBanState(Knight))

	_, err := p.Apply(NullMove)
	assert.True(t, errors.Is(err, ErrIllegalMove))

	_, err = p.Apply(BanMove{From: sq(t, "e2"), To: sq(t, "e4")})
	assert.True(t, errors.Is(err, ErrInvalidBan))

	_, err = p.Apply(mv(t, "e2e5:p"))
	assert.True(t, errors.Is(err, ErrIllegalMove))

	_, err = p.Apply(mv(t, "g1f3:p"))
	assert.True(t, errors.Is(err, ErrIllegalMove), "knight is banned")

	b := openingStub(t)
	b.exposes[ChessMove{From: sq(t, "d2"), To: sq(t, "d4")}] = true
	_, err = NewPosition(b, BanState{}).Apply(mv(t, "d2d4:p"))
	assert.True(t, errors.Is(err, ErrIllegalMove), "own king left attacked")
}

func TestUndoRestoresBanAndBoard(t *testing.T) {
	root := NewPosition(twoPly(t), NewBanState(Rook))
	p1, err := root.Apply(mv(t, "e2e4:n"))
	require.NoError(t, err)
	p2, err := p1.Apply(mv(t, "e7e5:q"))
	require.NoError(t, err)
	assert.Equal(t, Queen, p2.Ban().Get())
	assert.Equal(t, []BanMove{mv(t, "e2e4:n"), mv(t, "e7e5:q")}, p2.History())

	back, err := p2.Undo()
	require.NoError(t, err)
	assert.Same(t, p1, back)
	assert.Equal(t, Knight, back.Ban().Get())
	assert.Equal(t, Black, back.SideToMove())

	back, err = back.Undo()
	require.NoError(t, err)
	assert.Same(t, root, back)
	assert.Equal(t, Rook, back.Ban().Get())
	assert.Same(t, root.Board(), back.Board())
	assert.Empty(t, back.History())

	_, err = back.Undo()
	assert.True(t, errors.Is(err, ErrNoHistory))
}

func TestApplyNullKeepsBan(t *testing.T) {
	root := NewPosition(openingStub(t), NewBanState(Knight))
	p, err := root.ApplyNull()
	require.NoError(t, err)
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, Knight, p.Ban().Get())
	assert.Equal(t, []BanMove{NullMove}, p.History())

	back, err := p.Undo()
	require.NoError(t, err)
	assert.Same(t, root, back)

	_, err = NewPosition(plainBoard{openingStub(t)}, BanState{}).ApplyNull()
	assert.True(t, errors.Is(err, ErrNoNullMove))
}

func TestFormatPositionNeedsFEN(t *testing.T) {
	_, err := FormatPosition(NewPosition(openingStub(t), BanState{}))
	assert.True(t, errors.Is(err, ErrNoFEN))
}
