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

// Color is the side to move or the owner of a piece. Both is only used to
// index combined occupancy lookups, never stored on a Piece.
type Color uint8

const (
	White Color = iota
	Black
	ColorLength
	Both = ColorLength
)

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < ColorLength
}

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String returns "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

var moveDirection = [ColorLength]Direction{North, South}

// MoveDirection returns the direction a pawn of color c advances.
func (c Color) MoveDirection() Direction {
	return moveDirection[c]
}

// PromotionRankBb returns the back rank color c's pawns promote on.
func (c Color) PromotionRankBb() Bitboard {
	if c == White {
		return Rank8.Bb()
	}
	return Rank1.Bb()
}

// PawnDoubleRank returns the rank a color c pawn lands on after a double push.
func (c Color) PawnDoubleRank() Bitboard {
	if c == White {
		return Rank4.Bb()
	}
	return Rank5.Bb()
}

var directionFactor = [ColorLength]int{1, -1}

// Direction returns +1 for White and -1 for Black, used to flip a
// white-relative evaluation into the view of the side to move.
func (c Color) Direction() int {
	return directionFactor[c]
}
