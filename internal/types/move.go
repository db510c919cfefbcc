/*
 * corvid - a UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"fmt"
	"strings"
)

// Move packs a chess move into the low 24 bits of a uint64, leaving the
// remaining bits free for a move-ordering sort key the move generator stamps
// in and the search strips back out before storing or comparing moves.
//  BITMAP
//  39 .. 24          23   22   21   20   19 16      15 12      11 6    5 0
//  sort value (Value) cast  ep  dpush cap  | promo pt | move pt |  to  | from
type Move uint64

// MoveNone is the zero value; no valid move encodes to it.
const MoveNone Move = 0

const (
	fromShift     uint = 0
	toShift       uint = 6
	movePtShift   uint = 12
	promoPtShift  uint = 16
	captureShift  uint = 20
	doublePushBit uint = 21
	enPassantBit  uint = 22
	castlingBit   uint = 23
	valueShift    uint = 24

	squareMask Move = 0x3F
	pieceMask  Move = 0xF
	moveMask   Move = 1<<valueShift - 1 // low 24 bits: everything but the sort value
	valueMask  Move = 0xFFFF << valueShift
)

// MoveParams groups the fields needed to encode a move, so callers don't
// have to remember positional argument order for the flag bits.
type MoveParams struct {
	From        Square
	To          Square
	MovingPiece PieceType
	PromoPiece  PieceType // PtNone unless this is a promotion
	Capture     bool
	DoublePush  bool
	EnPassant   bool
	Castling    bool
}

// CreateMove encodes p into a Move.
func CreateMove(p MoveParams) Move {
	m := Move(p.From) |
		Move(p.To)<<toShift |
		Move(p.MovingPiece)<<movePtShift |
		Move(p.PromoPiece)<<promoPtShift
	if p.Capture {
		m |= 1 << captureShift
	}
	if p.DoublePush {
		m |= 1 << doublePushBit
	}
	if p.EnPassant {
		m |= 1 << enPassantBit
	}
	if p.Castling {
		m |= 1 << castlingBit
	}
	return m
}

// CreateMoveValue encodes p into a Move and stamps the move generator's sort
// value into its high bits. The value is shifted into an unsigned range
// first since the sign bit would otherwise land inside the move bits.
func CreateMoveValue(p MoveParams, value Value) Move {
	return CreateMove(p) | Move(uint16(value-ValueNA))<<valueShift
}

// MoveOf strips the sort value, leaving only the move itself. Two moves
// that differ only by sort value compare equal after MoveOf.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// ValueOf returns the sort value stamped into m by the move generator, or
// ValueNA if none was ever set.
func (m Move) ValueOf() Value {
	return Value(uint16((m&valueMask)>>valueShift)) + ValueNA
}

// SetValue stamps v as m's sort value, replacing whatever was stored
// before, and returns the updated move. MoveNone is left untouched since it
// carries no squares to sort.
func (m Move) SetValue(v Value) Move {
	if m == MoveNone {
		return m
	}
	return m.MoveOf() | Move(uint16(v-ValueNA))<<valueShift
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

// MovingPiece returns the kind of the piece making the move.
func (m Move) MovingPiece() PieceType {
	return PieceType((m >> movePtShift) & pieceMask)
}

// PromotionPiece returns the piece kind promoted to, or PtNone if this is
// not a promotion.
func (m Move) PromotionPiece() PieceType {
	return PieceType((m >> promoPtShift) & pieceMask)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.PromotionPiece() != PtNone
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool {
	return m&(1<<captureShift) != 0
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m&(1<<doublePushBit) != 0
}

// IsEnPassant reports whether the move captures en passant.
func (m Move) IsEnPassant() bool {
	return m&(1<<enPassantBit) != 0
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return m&(1<<castlingBit) != 0
}

// IsValid reports whether m has well formed squares and piece kinds.
// MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.From() != m.To() &&
		m.MovingPiece().IsValid() &&
		(m.PromotionPiece() == PtNone || m.PromotionPiece().IsValid())
}

// StringUci returns the UCI long algebraic representation of m (e.g. "e2e4",
// "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotionPiece().Char()))
	}
	return os.String()
}

// String returns a human readable description of m.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	flags := ""
	if m.IsCapture() {
		flags += "x"
	}
	if m.IsEnPassant() {
		flags += "ep"
	}
	if m.IsDoublePawnPush() {
		flags += "2"
	}
	if m.IsCastling() {
		flags += "O"
	}
	return fmt.Sprintf("Move{%s %s%s}", m.StringUci(), m.MovingPiece().Char(), flags)
}
