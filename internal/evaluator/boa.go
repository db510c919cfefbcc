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

package evaluator

import (
	"math"

	"github.com/corvidchess/corvid/internal/config"
	. "github.com/corvidchess/corvid/internal/types"
)

// enemyHalf[c] is the set of ranks on the opponent's side of the board from
// c's point of view, used by the space term.
var enemyHalf = [ColorLength]Bitboard{
	White: Rank8Bb | Rank7Bb | Rank6Bb | Rank5Bb,
	Black: Rank1Bb | Rank2Bb | Rank3Bb | Rank4Bb,
}

// averageMinorMobility is the reference mobility (squares reachable, own
// pieces excluded) a knight/bishop has on an otherwise average middlegame
// board. Minors below this are considered restricted.
var averageMinorMobility = map[PieceType]int{
	Knight: 4,
	Bishop: 6,
}

var kingTropismWeight = map[PieceType]float64{}

func init() {
	kingTropismWeight[Knight] = config.Settings.Eval.KingTropismKnight
	kingTropismWeight[Bishop] = config.Settings.Eval.KingTropismBishop
	kingTropismWeight[Rook] = config.Settings.Eval.KingTropismRook
	kingTropismWeight[Queen] = config.Settings.Eval.KingTropismQueen
}

// evalSpace rewards controlling squares in the opponent's half of the board,
// a classic "boa constrictor" squeeze term - most valuable in closed
// middlegames, so it is only applied to the midgame score.
func (e *Evaluator) evalSpace(us Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	if !config.Settings.Eval.UseAttacksInEval {
		return &tmpScore
	}
	controlled := (e.attack.All[us] & enemyHalf[us]).PopCount()
	tmpScore.MidGameValue = int16(controlled) * config.Settings.Eval.SpaceBonus
	return &tmpScore
}

// evalRestriction rewards us for squeezing the mobility of the opponent's
// minor pieces below what they'd normally have.
func (e *Evaluator) evalRestriction(us Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	if !config.Settings.Eval.UseAttacksInEval {
		return &tmpScore
	}
	them := us.Flip()
	theirPieces := e.position.OccupiedBb(them)
	for pt, avg := range averageMinorMobility {
		for bb := e.position.PiecesBb(them, pt); bb != BbZero; {
			sq := bb.PopLsb()
			mobility := (e.attack.From[them][sq] &^ theirPieces).PopCount()
			if mobility < avg {
				tmpScore.MidGameValue += int16(avg-mobility) * config.Settings.Eval.RestrictionMalus
			}
		}
	}
	return &tmpScore
}

// evalKingTropism rewards pieces for standing close to the enemy king -
// knights and bishops moderately, rooks lightly, the queen heavily.
func (e *Evaluator) evalKingTropism(us Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0
	enemyKing := e.position.KingSquare(us.Flip())
	for pt, weight := range kingTropismWeight {
		for bb := e.position.PiecesBb(us, pt); bb != BbZero; {
			sq := bb.PopLsb()
			closeness := 7 - SquareDistance(sq, enemyKing)
			tmpScore.MidGameValue += int16(math.Round(weight * float64(closeness)))
		}
	}
	return &tmpScore
}

// centerManhattanDistance returns sq's Manhattan-style distance to the
// center, 2 for a center square up to 14 for a corner - used by the mop-up
// term to push a lone losing king away from the middle of the board.
func centerManhattanDistance(sq Square) int {
	file := int(sq.FileOf())
	rank := int(sq.RankOf())
	fileDist := abs(2*file - 7)
	rankDist := abs(2*rank - 7)
	return fileDist + rankDist
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// evalTradeAndMopUp applies two material-imbalance-driven terms from white's
// point of view: a bonus for trading pieces while ahead (simplification
// favors the side already winning), and, once the game is basically decided,
// a mop-up term that drives the losing king to the edge and the winning king
// toward it.
func (e *Evaluator) evalTradeAndMopUp() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	imbalance := int(e.position.Material(White)) - int(e.position.Material(Black))
	absImbalance := imbalance
	if absImbalance < 0 {
		absImbalance = -absImbalance
	}

	if config.Settings.Eval.UseTradeBonus && absImbalance >= int(config.Settings.Eval.TradeBonusThreshold) {
		piecesOnBoard := e.position.OccupiedAll().PopCount()
		bonus := (32 - piecesOnBoard) * int(config.Settings.Eval.TradeBonusFactor) * absImbalance / 100
		if imbalance < 0 {
			bonus = -bonus
		}
		tmpScore.MidGameValue += int16(bonus)
		tmpScore.EndGameValue += int16(bonus)
	}

	if config.Settings.Eval.UseMopUp && absImbalance >= int(config.Settings.Eval.MopUpThreshold) {
		winner, loser := White, Black
		if imbalance < 0 {
			winner, loser = Black, White
		}
		losingKing := e.position.KingSquare(loser)
		winningKing := e.position.KingSquare(winner)
		mopUp := centerManhattanDistance(losingKing)*int(config.Settings.Eval.MopUpCmdFactor) +
			(14-SquareDistance(winningKing, losingKing))*int(config.Settings.Eval.MopUpKingDistFactor)
		if winner == Black {
			mopUp = -mopUp
		}
		tmpScore.EndGameValue += int16(mopUp)
	}

	return &tmpScore
}
