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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	tests := []struct {
		name   string
		params MoveParams
	}{
		{"e2e4", MoveParams{From: SqE2, To: SqE4, MovingPiece: Pawn, DoublePush: true}},
		{"e1g1 castling", MoveParams{From: SqE1, To: SqG1, MovingPiece: King, Castling: true}},
		{"a7a8Q", MoveParams{From: SqA7, To: SqA8, MovingPiece: Pawn, PromoPiece: Queen}},
		{"d5e6 ep", MoveParams{From: SqD5, To: SqE6, MovingPiece: Pawn, Capture: true, EnPassant: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CreateMove(tt.params)
			assert.Equal(t, tt.params.From, m.From())
			assert.Equal(t, tt.params.To, m.To())
			assert.Equal(t, tt.params.MovingPiece, m.MovingPiece())
			assert.Equal(t, tt.params.Capture, m.IsCapture())
			assert.Equal(t, tt.params.DoublePush, m.IsDoublePawnPush())
			assert.Equal(t, tt.params.EnPassant, m.IsEnPassant())
			assert.Equal(t, tt.params.Castling, m.IsCastling())
			if tt.params.PromoPiece != PtNone {
				assert.True(t, m.IsPromotion())
				assert.Equal(t, tt.params.PromoPiece, m.PromotionPiece())
			} else {
				assert.False(t, m.IsPromotion())
			}
		})
	}
}

func TestMove_SetValue(t *testing.T) {
	m := CreateMove(MoveParams{From: SqE2, To: SqE4, MovingPiece: Pawn, DoublePush: true})
	m = m.SetValue(999)
	assert.Equal(t, Value(999), m.ValueOf())

	m = m.SetValue(ValueMax)
	assert.Equal(t, ValueMax, m.ValueOf())

	m = m.SetValue(ValueMin)
	assert.Equal(t, ValueMin, m.ValueOf())
}

func TestMove_MoveOf(t *testing.T) {
	base := CreateMove(MoveParams{From: SqE2, To: SqE4, MovingPiece: Pawn, DoublePush: true})
	stamped := base.SetValue(4242)
	assert.NotEqual(t, base, stamped)
	assert.Equal(t, base, stamped.MoveOf())
	assert.Equal(t, base.From(), stamped.From())
	assert.Equal(t, base.To(), stamped.To())
}

func TestMove_SetValue_MoveNone(t *testing.T) {
	assert.Equal(t, MoveNone, MoveNone.SetValue(500))
}

func TestMoveStringUci(t *testing.T) {
	assert.Equal(t, "e2e4", CreateMove(MoveParams{From: SqE2, To: SqE4, MovingPiece: Pawn, DoublePush: true}).StringUci())
	assert.Equal(t, "e7e5", CreateMove(MoveParams{From: SqE7, To: SqE5, MovingPiece: Pawn, DoublePush: true}).StringUci())
	assert.Equal(t, "a7a8q", CreateMove(MoveParams{From: SqA7, To: SqA8, MovingPiece: Pawn, PromoPiece: Queen}).StringUci())
	assert.Equal(t, "0000", MoveNone.StringUci())
}

func TestMove_IsValid(t *testing.T) {
	assert.True(t, CreateMove(MoveParams{From: SqE2, To: SqE4, MovingPiece: Pawn}).IsValid())
	assert.False(t, MoveNone.IsValid())
	assert.False(t, CreateMove(MoveParams{From: SqE2, To: SqE2, MovingPiece: Pawn}).IsValid())
}
