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

import "strings"

// CastlingRights is a 4 bit set of which castling moves are still available.
//  CastlingNone         CastlingRights = 0                                  // 0000
//  CastlingWhiteOO      CastlingRights = 1                                  // 0001
//  CastlingWhiteOOO                    = CastlingWhiteOO << 1               // 0010
//  CastlingWhite                       = CastlingWhiteOO | CastlingWhiteOOO // 0011
//  CastlingBlackOO                     = CastlingWhiteOO << 2               // 0100
//  CastlingBlackOOO                    = CastlingBlackOO << 1               // 1000
//  CastlingBlack                       = CastlingBlackOO | CastlingBlackOOO // 1100
//  CastlingAny                         = CastlingWhite | CastlingBlack      // 1111
type CastlingRights uint8

const (
	CastlingNone         CastlingRights = 0
	CastlingWhiteOO      CastlingRights = 1
	CastlingWhiteOOO                    = CastlingWhiteOO << 1
	CastlingWhite                       = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO                     = CastlingWhiteOO << 2
	CastlingBlackOOO                    = CastlingBlackOO << 1
	CastlingBlack                       = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                         = CastlingWhite | CastlingBlack
	CastlingRightsLength CastlingRights = 16
)

// Has reports whether any bit of rhs is set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears the bits of rhs from cr.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets the bits of rhs on cr.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// String renders cr the way it appears in a FEN castling field (e.g. "KQkq").
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var os strings.Builder
	if cr.Has(CastlingWhiteOO) {
		os.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		os.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		os.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		os.WriteString("q")
	}
	return os.String()
}

// castlingRights maps a square to the castling rights lost when a piece
// moves to or from it (rook or king origin squares).
var castlingRights [SqLength]CastlingRights

func init() {
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

// GetCastlingRights returns the castling rights affected by a move
// touching sq.
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}
