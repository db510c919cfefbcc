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

// magicEntry holds the fancy-magic lookup data for a single square.
// Taken in spirit from Stockfish; see https://www.chessprogramming.org/Magic_Bitboards.
type magicEntry struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

func (m *magicEntry) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

var (
	rookDirections   = [4]Direction{North, South, East, West}
	bishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable   = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	rookMagics   [64]magicEntry
	bishopMagics [64]magicEntry
)

func initMagicBitboards() {
	initMagics(rookTable, &rookMagics, &rookDirections)
	initMagics(bishopTable, &bishopMagics, &bishopDirections)
}

// initMagics computes the rook or bishop magic table for every square by
// generating a candidate magic number and verifying it maps every relevant
// occupancy subset to the correct sliding attack bitboard.
func initMagics(table []Bitboard, magics *[64]magicEntry, directions *[4]Direction) {
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt := 0
	size := 0

	for sq := SqA8; sq <= SqH1; sq++ {
		edges = ((Rank8Bb | Rank1Bb) &^ sq.RankOf().Bb()) |
			((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA8 {
			m.Attacks = table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Carry-Rippler trick to enumerate every subset of the mask.
		// https://www.chessprogramming.org/Traversing_Subsets_of_a_Set
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the four given directions from sq until it
// runs off the board or hits an occupied square. Not used outside startup
// init: loop-in-loop, much slower than a magic lookup.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		for s := sq.To(d); s.IsValid(); s = s.To(d) {
			attack |= s.Bb()
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// prnG is Sebastiano Vigna's xorshift64star generator, used because it finds
// sparse candidate magics fast; general-purpose math/rand is not tuned for
// this search.
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns a candidate with roughly 1/8th of its bits set, which is
// what a good magic number looks like.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
