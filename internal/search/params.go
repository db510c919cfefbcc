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

package search

import (
	"math"

	"github.com/corvidchess/corvid/internal/types"
)

// This file contain data structures and functions to support the search with
// static or pre-computed parameters. Mostly for params too complex to be
// part of the search configuration

// lmr is the base lookup table for late move reductions in the dimensions
// depth and moves searched: floor(0.5 + ln(depth)*ln(moves)/2.5). The
// per-node adjustments (pv, killer, counter-move, history, improving,
// material, capture) are added on top by LmrReduction since they depend on
// runtime state the table can't capture.
var lmr [32][64]int

// LmrAdjustments carries the per-node, per-move state that shifts the base
// LMR table value up or down.
type LmrAdjustments struct {
	PvNode          bool
	Killer          bool
	CounterMove     bool
	History         int64
	Improving       bool
	NonPawnMaterial int
	Capture         bool
}

// LmrReduction returns the search depth reduction for LMR for a move at
// movesSearched with depth plies left, combining the base table lookup with
// the named adjustment terms, clamped to [0, depth-2].
func LmrReduction(depth int, movesSearched int, adj LmrAdjustments) int {
	d, m := depth, movesSearched
	if d >= 32 {
		d = 31
	}
	if m >= 64 {
		m = 63
	}
	r := lmr[d][m]

	if adj.PvNode {
		r--
	}
	if adj.Killer {
		r--
	}
	if adj.CounterMove {
		r--
	}
	r -= int(adj.History / 5000)
	if !adj.PvNode && depth > 8 {
		r++
	}
	if movesSearched > 12 {
		r++
	}
	if adj.Improving {
		r--
	}
	if !adj.PvNode && adj.NonPawnMaterial > 4 {
		r++
	}
	if adj.Capture && !adj.PvNode {
		r++
	}

	maxR := depth - 2
	if maxR < 0 {
		maxR = 0
	}
	if r < 0 {
		r = 0
	}
	if r > maxR {
		r = maxR
	}
	return r
}

// prepare the pre-computed values.
func init() {
	for i := 1; i < 32; i++ {
		for j := 1; j < 64; j++ {
			v := int(math.Floor(0.5 + math.Log(float64(i))*math.Log(float64(j))/2.5))
			if v < 0 {
				v = 0
			}
			lmr[i][j] = v
		}
	}
	// printLmr()
}

func printLmr() {
	for i := 3; i < 32; i++ {
		for j := 3; j < 64; j++ {
			out.Printf("LMR: depth: %2d moves searched: %2d r:%2d\n", i, j, lmr[i][j])
		}
		out.Println()
	}
}

var lmp [16]int

func init() {
	for i := 1; i < 16; i++ {
		// from Crafty
		lmp[i] = 6 + int(math.Pow(float64(i)+0.5, 1.3))
		// out.Printf("LMP: depth: %2d r:%2d\n", i, lmp[i])
	}
}

// LmpMovesSearched returns a depth dependent value for moves searched
// for late Move Prunings.
func LmpMovesSearched(depth int) int {
	if depth >= 16 {
		return lmp[15]
	}
	return lmp[depth]
}

// futility pruning - array with margins per depth left.
var fp = [7]types.Value{0, 100, 200, 300, 500, 900, 1200}

// Crafty values: {  0, 100, 150, 200,  250,  300,  400,  500, 600, 700, 800, 900, 1000, 1100, 1200, 1300 }

// aspiration steps
var aspirationSteps = []types.Value{50, 200, types.ValueMax}
