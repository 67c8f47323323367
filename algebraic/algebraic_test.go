package algebraic_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bess-engine/algebraic"
	"bess-engine/backend"
	"bess-engine/bess"
)

func start(t *testing.T, kind backend.Kind) *bess.Position {
	t.Helper()
	p, err := backend.LoadPosition(kind, backend.StartFEN)
	require.NoError(t, err)
	return p
}

func moves(t *testing.T, line string) []bess.BanMove {
	t.Helper()
	ms, err := bess.ParseMoves(line)
	require.NoError(t, err)
	return ms
}

func play(t *testing.T, p *bess.Position, line string) *bess.Position {
	t.Helper()
	for _, m := range moves(t, line) {
		var err error
		p, err = p.Apply(m)
		require.NoError(t, err, m.String())
	}
	return p
}

func TestEncodeOpening(t *testing.T) {
	for _, kind := range []backend.Kind{backend.KindGoose, backend.KindDragon} {
		p := start(t, kind)
		cases := map[string]string{
			"e2e4:n": "e4:n",
			"g1f3:q": "Nf3:q",
			"b1c3:k": "Nc3:k",
			"a2a3:p": "a3:p",
		}
		for uci, want := range cases {
			m, err := bess.ParseMove(uci)
			require.NoError(t, err)
			got, err := algebraic.Encode(p, m)
			require.NoError(t, err, uci)
			assert.Equal(t, want, got, "%s on %s", uci, kind)
		}
	}
}

func TestEncodeRejectsIllegal(t *testing.T) {
	p, err := backend.LoadPosition(backend.KindGoose, backend.StartFEN+" n")
	require.NoError(t, err)
	m, err := bess.ParseMove("g1f3:q")
	require.NoError(t, err)
	_, err = algebraic.Encode(p, m)
	assert.True(t, errors.Is(err, bess.ErrIllegalMove))
}

func TestCheckMarkFollowsBan(t *testing.T) {
	// After 1. e4 f6 the queen checks from h5 and only g6 blocks.
	p := play(t, start(t, backend.KindGoose), "e2e4:n f7f6:n")

	check, err := algebraic.Encode(p, moves(t, "d1h5:n")[0])
	require.NoError(t, err)
	assert.Equal(t, "Qh5+:n", check)

	mate, err := algebraic.Encode(p, moves(t, "d1h5:p")[0])
	require.NoError(t, err)
	assert.Equal(t, "Qh5#:p", mate)
}

func TestEncodeFoolsMate(t *testing.T) {
	p := play(t, start(t, backend.KindDragon), "f2f3:n e7e5:n g2g4:b")
	got, err := algebraic.Encode(p, moves(t, "d8h4:r")[0])
	require.NoError(t, err)
	assert.Equal(t, "Qh4#:r", got)
}

func TestDecode(t *testing.T) {
	p := start(t, backend.KindGoose)
	m, err := algebraic.Decode(p, "Nf3:q")
	require.NoError(t, err)
	assert.Equal(t, moves(t, "g1f3:q")[0], m)

	m, err = algebraic.Decode(p, "e4:k")
	require.NoError(t, err)
	assert.Equal(t, "e2e4:k", m.UCI())

	// Check markers are optional on input.
	q := play(t, p, "e2e4:n f7f6:n")
	m, err = algebraic.Decode(q, "Qh5:p")
	require.NoError(t, err)
	assert.Equal(t, "d1h5:p", m.UCI())
	m, err = algebraic.Decode(q, "Qh5#:p")
	require.NoError(t, err)
	assert.Equal(t, "d1h5:p", m.UCI())
}

func TestDecodeErrors(t *testing.T) {
	p, err := backend.LoadPosition(backend.KindGoose, backend.StartFEN+" n")
	require.NoError(t, err)

	for _, s := range []string{"e4", "e4:", "e4:x", "e4:nn", "Ke2:q", "Nf6:q", ""} {
		_, err := algebraic.Decode(p, s)
		assert.True(t, errors.Is(err, bess.ErrInvalidNotation), "%q: %v", s, err)
	}
	_, err = algebraic.Decode(p, "Nf3:q")
	assert.True(t, errors.Is(err, bess.ErrIllegalMove), "knight is banned")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := play(t, start(t, backend.KindGoose), "e2e4:q d7d5:b")
	for m := range p.LegalMoves() {
		s, err := algebraic.Encode(p, m)
		require.NoError(t, err, m.String())
		got, err := algebraic.Decode(p, s)
		require.NoError(t, err, s)
		assert.Equal(t, m, got, s)
	}
}

func TestEncodeLine(t *testing.T) {
	p := start(t, backend.KindGoose)
	got, err := algebraic.EncodeLine(p, moves(t, "e2e4:n e7e5:q g1f3:p"))
	require.NoError(t, err)
	assert.Equal(t, "1. e4:n e5:q 2. Nf3:p", got)

	black := play(t, p, "e2e4:n")
	got, err = algebraic.EncodeLine(black, moves(t, "e7e5:q g1f3:p"))
	require.NoError(t, err)
	assert.Equal(t, "1... e5:q 2. Nf3:p", got)

	_, err = algebraic.EncodeLine(p, moves(t, "e2e4:n g8f6:q"))
	assert.True(t, errors.Is(err, bess.ErrIllegalMove), "knight is banned")
}
