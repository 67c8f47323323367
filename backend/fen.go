package backend

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// checkFEN performs the structural checks dragontoothmg skips.
func checkFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return errors.Errorf("fen %q: want 6 fields, got %d", fen, len(fields))
	}
	if ranks := strings.Split(fields[0], "/"); len(ranks) != 8 {
		return errors.Errorf("fen %q: want 8 ranks, got %d", fen, len(ranks))
	}
	if fields[1] != "w" && fields[1] != "b" {
		return errors.Errorf("fen %q: bad side to move %q", fen, fields[1])
	}
	return nil
}

// passFEN returns fen with the other side to move and no en passant square,
// advancing the clocks as a quiet half-move would.
func passFEN(fen string) (string, error) {
	if err := checkFEN(fen); err != nil {
		return "", err
	}
	fields := strings.Fields(fen)
	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return "", errors.Wrapf(err, "fen %q: halfmove clock", fen)
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return "", errors.Wrapf(err, "fen %q: fullmove number", fen)
	}
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
		full++
	}
	fields[3] = "-"
	fields[4] = strconv.Itoa(half + 1)
	fields[5] = strconv.Itoa(full)
	return strings.Join(fields, " "), nil
}
