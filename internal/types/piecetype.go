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

// PieceType enumerates the six piece kinds plus the empty marker.
//  test for non sliding pt & 0b0100 == 0 (must also be none zero)
//  test for sliding pt & 0b0100 != 0 (must also be < 7)
type PieceType uint8

const (
	PtNone   PieceType = 0b0000
	King     PieceType = 0b0001
	Pawn     PieceType = 0b0010
	Knight   PieceType = 0b0011
	Bishop   PieceType = 0b0100
	Rook     PieceType = 0b0101
	Queen    PieceType = 0b0110
	PtLength PieceType = 0b0111
)

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsSliding reports whether pt moves along rays (bishop, rook or queen).
func (pt PieceType) IsSliding() bool {
	return pt&0b0100 != 0
}

// gamePhaseValue weighs each piece type's contribution to the game phase
// counter used to taper the evaluation between mid game and end game.
var gamePhaseValue = [PtLength]int{0, 0, 0, 1, 1, 2, 4}

// GamePhaseValue returns pt's weight in the game phase counter.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// pieceTypeValue holds the static material values: P=100, N=337, B=365,
// R=477, Q=1025, K=20000.
var pieceTypeValue = [PtLength]Value{0, 20000, 100, 337, 365, 477, 1025}

// ValueOf returns the static material value of pt.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"NOPIECE", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns the full name of pt.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

const pieceTypeToChar = "-KPNBRQ"

// Char returns the single upper case letter used for pt in FEN piece
// placement and algebraic move notation.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}
