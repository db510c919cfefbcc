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

// pseudoAttacks holds the attack bitboard of every piece type (except pawn)
// on every square, as if the board were otherwise empty. For King and Knight
// this is the actual attack set; for the sliders it is filled in by
// leapersPreCompute with slidingAttack on an empty board.
var pseudoAttacks [PtLength][SqLength]Bitboard

// pawnAttacks holds the diagonal capture squares of a pawn of each color on
// each square.
var pawnAttacks [ColorLength][SqLength]Bitboard

// knightSteps are the eight (file, rank) deltas a knight can jump.
var knightSteps = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func leapersPreCompute() {
	for sq := SqA8; sq < SqNone; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		for _, step := range knightSteps {
			nf, nr := f+step[0], r+step[1]
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			pseudoAttacks[Knight][sq] |= SquareOf(File(nf), Rank(nr)).Bb()
		}

		for _, d := range Directions {
			if to := sq.To(d); to.IsValid() {
				pseudoAttacks[King][sq] |= to.Bb()
			}
		}

		// White pawns capture towards rank 8 (North); Black towards rank 1.
		if to := sq.To(Northeast); to.IsValid() {
			pawnAttacks[White][sq] |= to.Bb()
		}
		if to := sq.To(Northwest); to.IsValid() {
			pawnAttacks[White][sq] |= to.Bb()
		}
		if to := sq.To(Southeast); to.IsValid() {
			pawnAttacks[Black][sq] |= to.Bb()
		}
		if to := sq.To(Southwest); to.IsValid() {
			pawnAttacks[Black][sq] |= to.Bb()
		}
	}

	for sq := SqA8; sq < SqNone; sq++ {
		pseudoAttacks[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacks[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

// GetAttacksBb returns a bitboard of all squares attacked by a piece of kind
// pt (not Pawn) standing on sq, given the board's occupancy. Sliding pieces
// use the magic tables; King and Knight ignore occupied.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] | rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attack bitboard of a piece of kind pt on sq on
// an otherwise empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the diagonal capture squares of a pawn of color c on
// sq.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}
