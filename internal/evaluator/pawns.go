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

package evaluator

import (
	. "github.com/corvidchess/corvid/internal/config"
	. "github.com/corvidchess/corvid/internal/types"
)

// passedPawnRankBonus scales the base PawnPassedMid/EndBonus by how far the
// pawn already is from its own back rank (0 = back rank, 6 = one step from
// promotion - promotions themselves aren't evaluated, the move already won).
var passedPawnRankBonus = [7]int16{0, 0, 1, 2, 4, 7, 12}

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - calculate
	for us := White; us <= Black; us++ {
		e.evaluatePawnsForColor(us, int16(us.Direction()))
	}

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// evaluatePawnsForColor adds (sign > 0) or subtracts (sign < 0) us's pawn
// structure terms to/from tmpScore.
func (e *Evaluator) evaluatePawnsForColor(us Color, sign int16) {
	them := us.Flip()
	ourPawns := e.position.PiecesBb(us, Pawn)
	theirPawns := e.position.PiecesBb(them, Pawn)
	if ourPawns == BbZero {
		return
	}

	// bitboards of all squares each side's pawns attack, used to test
	// support/chains and to see whether a stop square is contested
	var ourPawnAttacks, theirPawnAttacks Bitboard
	for bb := ourPawns; bb != BbZero; {
		ourPawnAttacks |= GetPawnAttacks(us, bb.PopLsb())
	}
	for bb := theirPawns; bb != BbZero; {
		theirPawnAttacks |= GetPawnAttacks(them, bb.PopLsb())
	}

	ourKing := e.position.KingSquare(us)
	theirKing := e.position.KingSquare(them)

	for bb := ourPawns; bb != BbZero; {
		sq := bb.PopLsb()
		file := sq.FileOf()

		// doubled: penalty per extra pawn on the same file (counted once per
		// file, at the file's least significant pawn square)
		if filePawns := ourPawns & file.Bb(); filePawns.Lsb() == sq {
			if extra := filePawns.PopCount() - 1; extra > 0 {
				tmpScore.MidGameValue += sign * int16(extra) * Settings.Eval.PawnDoubledMidMalus
				tmpScore.EndGameValue += sign * int16(extra) * Settings.Eval.PawnDoubledEndMalus
			}
		}

		isolated := ourPawns&sq.NeighbourFilesMask() == BbZero
		supported := ourPawnAttacks.Has(sq)

		switch {
		case isolated:
			tmpScore.MidGameValue += sign * Settings.Eval.PawnIsolatedMidMalus
			tmpScore.EndGameValue += sign * Settings.Eval.PawnIsolatedEndMalus
		case !supported && e.isBackward(us, sq, ourPawns, theirPawnAttacks):
			tmpScore.MidGameValue += sign * Settings.Eval.PawnBackwardMidMalus
			tmpScore.EndGameValue += sign * Settings.Eval.PawnBackwardEndMalus
		}

		if supported {
			tmpScore.MidGameValue += sign * Settings.Eval.PawnSupportedMidBonus
			tmpScore.EndGameValue += sign * Settings.Eval.PawnSupportedEndBonus
		}

		// passed: no enemy pawn can ever block or capture it on its way home
		if sq.PassedPawnMask(us)&theirPawns == BbZero {
			relRank := sq.RankOf()
			if us == White {
				relRank = Rank1 - relRank
			}
			rankBonus := passedPawnRankBonus[relRank]
			tmpScore.MidGameValue += sign * (Settings.Eval.PawnPassedMidBonus + rankBonus)
			tmpScore.EndGameValue += sign * (Settings.Eval.PawnPassedEndBonus + rankBonus*2)

			if supported {
				tmpScore.EndGameValue += sign * Settings.Eval.PawnPassedProtectedBonus
			}

			// king-proximity: in the endgame the defending king wants to be
			// close, the attacking king far - reward the advancing side when
			// its own king is closer than the defender's.
			proximity := SquareDistance(theirKing, sq) - SquareDistance(ourKing, sq)
			tmpScore.EndGameValue += sign * int16(proximity) * Settings.Eval.PawnPassedKingProximityFactor
		}
	}
}

// isBackward reports whether the pawn on sq has fallen behind its neighbours
// on adjacent files and can't be safely pushed because the stop square is
// covered by an enemy pawn attack.
func (e *Evaluator) isBackward(us Color, sq Square, ourPawns, theirPawnAttacks Bitboard) bool {
	stop := sq.To(us.MoveDirection())
	if !stop.IsValid() {
		return false
	}
	// a friendly pawn on a neighbour file that is level with or behind us
	// could advance to support the stop square - then we are not backward.
	neighbours := sq.NeighbourFilesMask() & ourPawns
	for bb := neighbours; bb != BbZero; {
		p := bb.PopLsb()
		if us == White {
			if p.RankOf() >= sq.RankOf() {
				return false
			}
		} else {
			if p.RankOf() <= sq.RankOf() {
				return false
			}
		}
	}
	return theirPawnAttacks.Has(stop)
}
