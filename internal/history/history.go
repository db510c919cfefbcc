//
// corvid - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package history provides data structures and functionality to manage
// history driven move tables (e.g. history counter, counter moves, etc.)
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)

// HistoryMax clamps every history-style table below so that a long search
// can't let a single entry grow without bound and drown out move ordering.
// Kept well inside int16 range since move scores carrying these values are
// packed into a 16-bit field of the Move itself.
const HistoryMax = 1 << 14

// History is a data structure updated during search to provide the move
// generator with valuable information for move sorting.
type History struct {
	// HistoryCount is the butterfly table: side to move, from, to. It survives
	// from the original engine and doubles as the "butterfly" term in move
	// scoring.
	HistoryCount [2][64][64]int64
	CounterMoves [64][64]Move

	// CaptureHistory is indexed by the moving (colored) piece, the target
	// square and the captured piece type - it tracks how often a capture of
	// that shape has caused a cutoff.
	CaptureHistory [PieceLength][64][PtLength]int64

	// QuietHistory is indexed by the moving (colored) piece and the target
	// square - the piece-square half of quiet move scoring, blended with
	// HistoryCount (the butterfly half) in move ordering.
	QuietHistory [PieceLength][64]int64
}

func (h History) String() string {
	sb := strings.Builder{}
	for sf := SqA8; sf < SqNone; sf++ {
		for st := SqA8; st < SqNone; st++ {
			sb.WriteString(out.Sprintf("Move=%s%s: ", sf.String(), st.String()))
			for c := White; c <= 1; c++ {
				count := h.HistoryCount[c][sf][st]
				sb.WriteString(out.Sprintf("%s=%-7d ", c.String(), count))
			}
			m := h.CounterMoves[sf][st]
			sb.WriteString(out.Sprintf("cm=%s\n", m.StringUci()))
		}
	}
	return sb.String()
}

// NewHistory creates a new History instance.
func NewHistory() *History {
	return &History{}
}

// clamp keeps a history value inside [-HistoryMax, HistoryMax].
func clamp(v int64) int64 {
	switch {
	case v > HistoryMax:
		return HistoryMax
	case v < -HistoryMax:
		return -HistoryMax
	default:
		return v
	}
}

// AddButterfly adds bonus (positive on a cutoff, negative as malus for
// earlier quiets that failed to cut off) to the butterfly table, clamped.
func (h *History) AddButterfly(us Color, from Square, to Square, bonus int64) {
	h.HistoryCount[us][from][to] = clamp(h.HistoryCount[us][from][to] + bonus)
}

// AddQuiet adds bonus to the piece-square quiet history table, clamped.
func (h *History) AddQuiet(piece Piece, to Square, bonus int64) {
	h.QuietHistory[piece][to] = clamp(h.QuietHistory[piece][to] + bonus)
}

// AddCapture adds bonus to the capture history table, clamped.
func (h *History) AddCapture(piece Piece, to Square, captured PieceType, bonus int64) {
	h.CaptureHistory[piece][to][captured] = clamp(h.CaptureHistory[piece][to][captured] + bonus)
}

// QuietScore returns the combined quiet move ordering score: the piece-square
// history plus half the butterfly (side/from/to) history.
func (h *History) QuietScore(us Color, piece Piece, from Square, to Square) int64 {
	return h.QuietHistory[piece][to] + h.HistoryCount[us][from][to]/2
}
