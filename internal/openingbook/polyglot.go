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

package openingbook

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math/rand"
	"os"
	"sort"

	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

// PolyglotRandom is the 781 entry random key table used to compute a
// position's Polyglot key: 768 keys for (piece kind, square), 4 for castling
// rights, 8 for the en passant file and 1 for the side to move. Polyglot
// files are hashed against one fixed, published table - any implementation
// that wants to read third-party .bin books has to reproduce that table
// verbatim, not derive its own.
//
// This table intentionally ships unpopulated (all zero). Transcribing 781
// sixty-four-bit constants by hand risks silently corrupting the one value
// that has to match byte for byte, and there is no copy of the canonical
// table in this codebase's own history to check against. polyglotTableReady
// refuses to compute keys against a zero table rather than guess, per the
// documented fallback: ship the real table verbatim, or refuse to load.
// Populating PolyglotRandom with the canonical constants is all that is
// needed to turn this on.
var PolyglotRandom [781]uint64

// polyglot key table layout, offsets into PolyglotRandom.
const (
	polyglotPieceOffset   = 0
	polyglotCastleOffset  = 768
	polyglotEpOffset      = 772
	polyglotTurnOffset    = 780
	polyglotRandomEntries = 781
)

// polyglotTableReady reports whether PolyglotRandom has been populated with
// its canonical values. A table left at its zero value is indistinguishable
// from one nobody ever filled in, which is exactly the "incomplete" case the
// format's own probing rules say to refuse rather than trust.
func polyglotTableReady() bool {
	for _, v := range PolyglotRandom {
		if v != 0 {
			return true
		}
	}
	return false
}

// polyglotPieceIndex maps a piece kind and color to the 0..11 index Polyglot
// uses for the piece/square section of the key table: black pawn=0, white
// pawn=1, black knight=2, ... black king=10, white king=11.
func polyglotPieceIndex(pt PieceType, c Color) int {
	kindIndex := map[PieceType]int{Pawn: 0, Knight: 1, Bishop: 2, Rook: 3, Queen: 4, King: 5}[pt]
	colorIndex := 0
	if c == White {
		colorIndex = 1
	}
	return 2*kindIndex + colorIndex
}

// polyglotSquareIndex converts sq to the file+8*rank index Polyglot expects,
// where rank 0 is the first rank - the opposite sense from this engine's own
// Square numbering (a8=0), so the rank has to be flipped.
func polyglotSquareIndex(sq Square) int {
	file := int(sq.FileOf())
	rank := 7 - int(sq.RankOf())
	return rank*8 + file
}

// polyglotKey computes the Polyglot book key for pos. It is deliberately
// independent of the engine's own Zobrist hash (internal/position), since
// Polyglot files are keyed against the fixed public table above and the two
// schemes must never be conflated.
func polyglotKey(pos *position.Position) (uint64, bool) {
	if !polyglotTableReady() {
		return 0, false
	}

	var key uint64
	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
			bb := pos.PiecesBb(c, pt)
			for bb != 0 {
				sq := bb.PopLsb()
				idx := polyglotPieceOffset + 64*polyglotPieceIndex(pt, c) + polyglotSquareIndex(sq)
				key ^= PolyglotRandom[idx]
			}
		}
	}

	rights := pos.CastlingRights()
	if rights.Has(CastlingWhiteOO) {
		key ^= PolyglotRandom[polyglotCastleOffset+0]
	}
	if rights.Has(CastlingWhiteOOO) {
		key ^= PolyglotRandom[polyglotCastleOffset+1]
	}
	if rights.Has(CastlingBlackOO) {
		key ^= PolyglotRandom[polyglotCastleOffset+2]
	}
	if rights.Has(CastlingBlackOOO) {
		key ^= PolyglotRandom[polyglotCastleOffset+3]
	}

	if epSq := pos.GetEnPassantSquare(); epSq != SqNone && polyglotEpCapturable(pos, epSq) {
		key ^= PolyglotRandom[polyglotEpOffset+int(epSq.FileOf())]
	}

	if pos.NextPlayer() == White {
		key ^= PolyglotRandom[polyglotTurnOffset]
	}

	return key, true
}

// polyglotEpCapturable reports whether the pawn that just double-stepped
// over epSq could actually be captured en passant by an enemy pawn - Polyglot
// only folds the en passant file into the key when the capture is a real
// possibility, not merely whenever a double push happened.
func polyglotEpCapturable(pos *position.Position, epSq Square) bool {
	mover := pos.NextPlayer()
	capturerPawns := pos.PiecesBb(mover, Pawn)
	// capturers stand beside the double-stepped pawn, one step past epSq
	pawnSq := epSq.To(mover.Flip().MoveDirection())
	file := pawnSq.FileOf()
	rank := pawnSq.RankOf()
	if file > FileA {
		if sq := SquareOf(file-1, rank); capturerPawns.Has(sq) {
			return true
		}
	}
	if file < FileH {
		if sq := SquareOf(file+1, rank); capturerPawns.Has(sq) {
			return true
		}
	}
	return false
}

// polyglotEntry is one decoded 16 byte book record.
type polyglotEntry struct {
	key    uint64
	move   uint16
	weight uint16
	learn  uint32
}

// readPolyglotFile decodes a Polyglot .bin file: a flat array of big-endian
// 16 byte records (u64 key, u16 move, u16 weight, u32 learn), sorted
// ascending by key.
func readPolyglotFile(path string) ([]polyglotEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var entries []polyglotEntry
	var buf [16]byte
	for {
		_, err := io.ReadFull(r, buf[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, polyglotEntry{
			key:    binary.BigEndian.Uint64(buf[0:8]),
			move:   binary.BigEndian.Uint16(buf[8:10]),
			weight: binary.BigEndian.Uint16(buf[10:12]),
			learn:  binary.BigEndian.Uint32(buf[12:16]),
		})
	}

	if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].key < entries[j].key }) {
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	}

	return entries, nil
}

// probePolyglot returns the slice of entries whose key matches key, found by
// binary search over the ascending-sorted entries.
func probePolyglot(entries []polyglotEntry, key uint64) []polyglotEntry {
	lo := sort.Search(len(entries), func(i int) bool { return entries[i].key >= key })
	hi := lo
	for hi < len(entries) && entries[hi].key == key {
		hi++
	}
	if lo == hi {
		return nil
	}
	return entries[lo:hi]
}

// pickWeighted chooses one of matches by weighted random selection, the way
// Polyglot-compatible books expect consumers to break ties among entries
// that share a position key - a weight of zero for every candidate falls
// back to a uniform pick among them.
func pickWeighted(matches []polyglotEntry) polyglotEntry {
	total := 0
	for _, e := range matches {
		total += int(e.weight)
	}
	if total == 0 {
		return matches[rand.Intn(len(matches))]
	}
	pick := rand.Intn(total)
	for _, e := range matches {
		if pick < int(e.weight) {
			return e
		}
		pick -= int(e.weight)
	}
	return matches[len(matches)-1]
}

// polyglotMoveToInternal converts raw, the 16 bit Polyglot move encoding
// (from square in bits 0..5, to square in bits 6..11, promotion piece in
// bits 12..14, all using Polyglot's own file+8*rank square numbering and its
// own a1-rooted rank sense), into this engine's internal Move by generating
// every legal move in pos and matching on from/to/promotion. Polyglot itself
// encodes castling as the king capturing its own rook, so the king's actual
// two-square castling destination is tried first.
func polyglotMoveToInternal(pos *position.Position, mg *movegen.Movegen, raw uint16) Move {
	fromIdx := int(raw & 0x3f)
	toIdx := int((raw >> 6) & 0x3f)
	promoBits := (raw >> 12) & 0x7

	fromSq := squareFromPolyglotIndex(fromIdx)
	toSq := squareFromPolyglotIndex(toIdx)

	var promo PieceType
	switch promoBits {
	case 1:
		promo = Knight
	case 2:
		promo = Bishop
	case 3:
		promo = Rook
	case 4:
		promo = Queen
	}

	legal := mg.GenerateLegalMoves(pos, movegen.GenAll)
	defer legal.Clear()

	castlingToSq := polyglotCastlingDestination(pos, fromSq, toSq)

	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() != fromSq {
			continue
		}
		if m.IsCastling() && castlingToSq != SqNone {
			if m.To() == castlingToSq {
				return m.MoveOf()
			}
			continue
		}
		if m.To() != toSq {
			continue
		}
		if m.IsPromotion() && m.PromotionPiece() != promo {
			continue
		}
		if !m.IsPromotion() && promo != PtNone {
			continue
		}
		return m.MoveOf()
	}
	return MoveNone
}

// squareFromPolyglotIndex converts a Polyglot file+8*rank square index back
// to this engine's own a8=0 numbered Square.
func squareFromPolyglotIndex(idx int) Square {
	file := File(idx & 7)
	rank := Rank(7 - idx/8)
	return SquareOf(file, rank)
}

// polyglotCastlingDestination recognizes Polyglot's "king captures own rook"
// castling encoding and returns the king's real two-square destination
// square, or SqNone if fromSq/toSq do not describe a castling move.
func polyglotCastlingDestination(pos *position.Position, fromSq Square, toSq Square) Square {
	king := pos.GetPiece(fromSq)
	if king != WhiteKing && king != BlackKing {
		return SqNone
	}
	switch {
	case fromSq == SqE1 && toSq == SqH1:
		return SqG1
	case fromSq == SqE1 && toSq == SqA1:
		return SqC1
	case fromSq == SqE8 && toSq == SqH8:
		return SqG8
	case fromSq == SqE8 && toSq == SqA8:
		return SqC8
	}
	return SqNone
}

// errPolyglotTableIncomplete is returned by initializePolyglot when
// PolyglotRandom has not been populated, per the format's own fallback for
// an incomplete random table: refuse to load rather than compute keys that
// cannot possibly match any real .bin file.
var errPolyglotTableIncomplete = errors.New("polyglot random key table is incomplete; refusing to load book")

// initializePolyglot decodes a Polyglot .bin file and stores its entries for
// probing. It never touches bookMap - Polyglot keys live in a different
// space than this engine's Zobrist hash and are probed directly against the
// stored entries by GetPolyglotMove.
func (b *Book) initializePolyglot(fullPath string) error {
	if !polyglotTableReady() {
		log.Error("Polyglot random key table is incomplete - refusing to load book")
		return errPolyglotTableIncomplete
	}
	entries, err := readPolyglotFile(fullPath)
	if err != nil {
		return err
	}
	b.polyglotEntries = entries
	log.Infof("Polyglot book contains %d entries\n", len(entries))
	return nil
}

// GetPolyglotMove looks up pos in a Polyglot book by its Polyglot key
// (distinct from the engine's own Zobrist hash), and if found, converts the
// weighted-random chosen entry's move encoding into an internal Move by
// matching it against the position's legal moves. ok is false if the book
// has no entry for pos, or the table required to compute Polyglot keys has
// not been populated.
func (b *Book) GetPolyglotMove(pos *position.Position, mg *movegen.Movegen) (move Move, ok bool) {
	if len(b.polyglotEntries) == 0 {
		return MoveNone, false
	}
	key, ready := polyglotKey(pos)
	if !ready {
		return MoveNone, false
	}
	matches := probePolyglot(b.polyglotEntries, key)
	if len(matches) == 0 {
		return MoveNone, false
	}
	chosen := pickWeighted(matches)
	move = polyglotMoveToInternal(pos, mg, chosen.move)
	if move == MoveNone {
		return MoveNone, false
	}
	return move, true
}
