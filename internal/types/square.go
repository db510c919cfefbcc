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

import "fmt"

// Square is one of the 64 squares of a chess board, plus the sentinel SqNone.
// Numbering runs a8=0, b8=1, ..., h8=7, a7=8, ..., h1=63 - rank descends as
// the index climbs. This matches the bitboard numbering used throughout the
// engine so that Square(n) is always bit n of a Bitboard.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA8 Square = iota
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA1
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqNone // 64
)

// SqLength is the number of real squares (SqNone is not one of them).
const SqLength = 64

// IsValid reports whether sq is one of the 64 real board squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq (RankOf == 0 is the 8th rank).
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// SquareOf builds a square from a file and rank, returning SqNone if either
// is out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// MakeSquare parses an algebraic square ("e4") into a Square, or SqNone if
// the string is not a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	digit := s[1] - '1'
	if !f.IsValid() || digit > 7 {
		return SqNone
	}
	// digit 0 == rank1 == Rank index 7; digit 7 == rank8 == Rank index 0
	r := Rank(7 - digit)
	return SquareOf(f, r)
}

// To returns the square reached from sq by stepping once in direction d, or
// SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	return sqTo[sq][directionIndex(d)]
}

// Bb returns a Bitboard with only this square's bit set.
func (sq Square) Bb() Bitboard {
	if !sq.IsValid() {
		return 0
	}
	return Bitboard(1) << uint(sq)
}

// String returns the algebraic notation of sq ("-" for SqNone).
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var sqTo [SqLength][8]Square

func init() {
	for sq := SqA8; sq < SqNone; sq++ {
		for i, d := range Directions {
			sqTo[sq][i] = sq.toPreCompute(d)
		}
	}
}

func directionIndex(d Direction) int {
	for i, dd := range Directions {
		if dd == d {
			return i
		}
	}
	panic(fmt.Sprintf("invalid direction %d", d))
}

// toPreCompute computes the one-step destination of sq in direction d,
// rejecting file wrap-around at the board edges.
func (sq Square) toPreCompute(d Direction) Square {
	f := sq.FileOf()
	switch d {
	case North, South:
		// rank-only move, no file wrap to check
	case East, Northeast, Southeast:
		if f >= FileH {
			return SqNone
		}
	case West, Southwest, Northwest:
		if f <= FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	next := int(sq) + int(d)
	if next < 0 || next >= SqLength {
		return SqNone
	}
	return Square(next)
}
