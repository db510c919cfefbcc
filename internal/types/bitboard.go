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
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with one bit per square.
type Bitboard uint64

// Various constant bitboards.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1

	FileABb Bitboard = 0x0101010101010101
	FileBBb Bitboard = FileABb << 1
	FileCBb Bitboard = FileABb << 2
	FileDBb Bitboard = FileABb << 3
	FileEBb Bitboard = FileABb << 4
	FileFBb Bitboard = FileABb << 5
	FileGBb Bitboard = FileABb << 6
	FileHBb Bitboard = FileABb << 7

	Rank8Bb Bitboard = 0xFF
	Rank7Bb Bitboard = Rank8Bb << (8 * 1)
	Rank6Bb Bitboard = Rank8Bb << (8 * 2)
	Rank5Bb Bitboard = Rank8Bb << (8 * 3)
	Rank4Bb Bitboard = Rank8Bb << (8 * 4)
	Rank3Bb Bitboard = Rank8Bb << (8 * 5)
	Rank2Bb Bitboard = Rank8Bb << (8 * 6)
	Rank1Bb Bitboard = Rank8Bb << (8 * 7)

	CenterFiles   Bitboard = FileDBb | FileEBb
	CenterRanks   Bitboard = Rank4Bb | Rank5Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

// Bb returns a Bitboard with only sq's bit set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the bit for s.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s on the receiver.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s on the receiver.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether sq's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// bits that would wrap around a file edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) >> 7
	case Southeast:
		return (b &^ FileHBb) << 9
	case Southwest:
		return (b &^ FileABb) << 7
	case Northwest:
		return (b &^ FileABb) >> 9
	}
	return b
}

// Lsb returns the least significant set bit as a Square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns and clears the least significant set bit.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String returns the raw 64 bit representation, msb first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 ascii board, rank 8 on top.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	return abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// CenterDistance returns sq's Chebyshev distance to the nearest center square.
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}

// Ray returns the squares reachable from sq by repeated steps in direction d
// on an empty board, not including sq itself.
func (sq Square) Ray(d Direction) Bitboard {
	return rays[directionIndex(d)][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2 if they share
// a rank, file or diagonal, else BbZero.
func Intermediate(sq1, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and to.
func (sq Square) Intermediate(to Square) Bitboard {
	return intermediate[sq][to]
}

// PassedPawnMask returns the squares on sq's file and neighbour files ahead
// of sq (from color c's perspective) that an enemy pawn would need to clear
// for sq's pawn to be passed.
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// KingSideCastleMask returns the squares (excluding the king's origin)
// that must be empty for color c to castle king side.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastMask returns the squares (excluding the king's origin)
// that must be empty for color c to castle queen side.
func QueenSideCastMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// SquaresBb returns all squares of the given square color (light/dark),
// keyed by White for light squares and Black for dark squares.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}

// FilesWestMask returns all files strictly west of sq's file.
func (sq Square) FilesWestMask() Bitboard {
	return filesWestMask[sq]
}

// FilesEastMask returns all files strictly east of sq's file.
func (sq Square) FilesEastMask() Bitboard {
	return filesEastMask[sq]
}

// FileWestMask returns sq's immediate west neighbour file, or BbZero on the a-file.
func (sq Square) FileWestMask() Bitboard {
	return fileWestMask[sq]
}

// FileEastMask returns sq's immediate east neighbour file, or BbZero on the h-file.
func (sq Square) FileEastMask() Bitboard {
	return fileEastMask[sq]
}

// RanksNorthMask returns all ranks strictly north (towards rank 8) of sq's rank.
func (sq Square) RanksNorthMask() Bitboard {
	return ranksNorthMask[sq]
}

// RanksSouthMask returns all ranks strictly south (towards rank 1) of sq's rank.
func (sq Square) RanksSouthMask() Bitboard {
	return ranksSouthMask[sq]
}

// NeighbourFilesMask returns the file(s) immediately adjacent to sq's file.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// ////////////////////
// Pre-computed tables
// ////////////////////

var (
	sqBb [SqLength]Bitboard

	squareDistance [SqLength][SqLength]int
	centerDistance [SqLength]int

	// rays[i][sq] holds the ray from sq in direction Directions[i], built by
	// walking Square.To until it falls off the board.
	rays [8][SqLength]Bitboard

	intermediate [SqLength][SqLength]Bitboard

	passedPawnMask [ColorLength][SqLength]Bitboard

	kingSideCastleMask  [ColorLength]Bitboard
	queenSideCastleMask [ColorLength]Bitboard

	squaresBb [ColorLength]Bitboard

	fileBb [8]Bitboard
	rankBb [8]Bitboard

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard
)

func init() {
	for sq := SqA8; sq < SqNone; sq++ {
		sqBb[sq] = Bitboard(1) << uint(sq)
	}
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = FileABb << uint(f)
	}
	for r := Rank8; r <= Rank1; r++ {
		rankBb[r] = Rank8Bb << (8 * uint(r))
	}
	squareDistancePreCompute()
	centerDistancePreCompute()
	raysPreCompute()
	intermediatePreCompute()
	passedPawnMaskPreCompute()
	castleMasksPreCompute()
	squareColorsPreCompute()
	squareMasksPreCompute()
	initMagicBitboards()
	leapersPreCompute()
}

func squareMasksPreCompute() {
	for sq := SqA8; sq < SqNone; sq++ {
		f, r := sq.FileOf(), sq.RankOf()
		for ff := FileA; ff <= FileH; ff++ {
			switch {
			case ff < f:
				filesWestMask[sq] |= fileBb[ff]
			case ff > f:
				filesEastMask[sq] |= fileBb[ff]
			}
		}
		if f > FileA {
			fileWestMask[sq] = fileBb[f-1]
			neighbourFilesMask[sq] |= fileBb[f-1]
		}
		if f < FileH {
			fileEastMask[sq] = fileBb[f+1]
			neighbourFilesMask[sq] |= fileBb[f+1]
		}
		// Rank8 == 0, so "north" (towards rank 8) is the lower rank indices.
		for rr := Rank8; rr < RankNone; rr++ {
			switch {
			case rr < r:
				ranksNorthMask[sq] |= rankBb[rr]
			case rr > r:
				ranksSouthMask[sq] |= rankBb[rr]
			}
		}
	}
}

func squareDistancePreCompute() {
	for sq1 := SqA8; sq1 < SqNone; sq1++ {
		for sq2 := SqA8; sq2 < SqNone; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] = maxInt(
					FileDistance(sq1.FileOf(), sq2.FileOf()),
					RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

func centerDistancePreCompute() {
	for sq := SqA8; sq < SqNone; sq++ {
		d := squareDistance[sq][SqD5]
		for _, c := range [3]Square{SqE5, SqD4, SqE4} {
			if squareDistance[sq][c] < d {
				d = squareDistance[sq][c]
			}
		}
		centerDistance[sq] = d
	}
}

func raysPreCompute() {
	for i, d := range Directions {
		for sq := SqA8; sq < SqNone; sq++ {
			b := BbZero
			cur := sq
			for {
				next := cur.To(d)
				if next == SqNone {
					break
				}
				b |= next.Bb()
				cur = next
			}
			rays[i][sq] = b
		}
	}
}

func intermediatePreCompute() {
	for from := SqA8; from < SqNone; from++ {
		for to := SqA8; to < SqNone; to++ {
			toBb := to.Bb()
			for i := range Directions {
				if rays[i][from]&toBb != BbZero {
					intermediate[from][to] |= rays[i][from] &^ rays[i][to] &^ toBb
				}
			}
		}
	}
}

func passedPawnMaskPreCompute() {
	for sq := SqA8; sq < SqNone; sq++ {
		// White pawns advance North (towards rank 8, decreasing index).
		passedPawnMask[White][sq] |= sq.Ray(North)
		if w := sq.To(West); w != SqNone {
			passedPawnMask[White][sq] |= w.Ray(North) | w.Bb()
		}
		if e := sq.To(East); e != SqNone {
			passedPawnMask[White][sq] |= e.Ray(North) | e.Bb()
		}
		// Black pawns advance South.
		passedPawnMask[Black][sq] |= sq.Ray(South)
		if w := sq.To(West); w != SqNone {
			passedPawnMask[Black][sq] |= w.Ray(South) | w.Bb()
		}
		if e := sq.To(East); e != SqNone {
			passedPawnMask[Black][sq] |= e.Ray(South) | e.Bb()
		}
	}
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = SqF1.Bb() | SqG1.Bb()
	kingSideCastleMask[Black] = SqF8.Bb() | SqG8.Bb()
	queenSideCastleMask[White] = SqD1.Bb() | SqC1.Bb() | SqB1.Bb()
	queenSideCastleMask[Black] = SqD8.Bb() | SqC8.Bb() | SqB8.Bb()
}

func squareColorsPreCompute() {
	for sq := SqA8; sq < SqNone; sq++ {
		// a8 (file 0, rank index 0) is a light square
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresBb[White] |= sq.Bb()
		} else {
			squaresBb[Black] |= sq.Bb()
		}
	}
}
