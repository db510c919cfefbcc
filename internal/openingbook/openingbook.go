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

// Package openingbook reads game databases of different formats into an
// internal data structure and can then be queried for a book move for a
// given position.
//
// Supported formats are currently:
//
// Simple for files storing one game per line in from-square/to-square UCI
// notation.
//
// San for files with lines of moves in SAN notation.
//
// Pgn for PGN formatted games.
//
// Polyglot for the standard binary .bin opening book format, decoded and
// probed by its own key scheme (see polyglot.go) rather than the line-based
// readers the other three formats share.
package openingbook

import (
	"bufio"
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog()

// parallel controls whether line/game processing uses goroutines - useful
// to disable for debugging.
const parallel = true

// BookFormat represents the supported opening book file formats.
type BookFormat uint8

// Supported book formats.
const (
	Simple BookFormat = iota
	San
	Pgn
	Polyglot
)

// FormatFromString maps a configuration string to its BookFormat value.
var FormatFromString = map[string]BookFormat{
	"Simple":   Simple,
	"San":      San,
	"Pgn":      Pgn,
	"Polyglot": Polyglot,
}

// Successor represents a move together with the zobrist key of the
// position it leads to.
type Successor struct {
	Move      uint32
	NextEntry uint64
}

// BookEntry describes exactly one position, identified by its zobrist key,
// and the moves (and successor positions) known to the book from there.
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []Successor
}

// Book is a chess opening book which can be read from different file
// formats into an internal data structure and queried by position key.
type Book struct {
	bookMap     map[uint64]BookEntry
	rootEntry   uint64
	initialized bool

	format BookFormat
	// polyglotEntries holds the decoded records of a Polyglot format book,
	// sorted ascending by key. Polyglot books are probed directly against
	// this slice by their own key scheme (see polyglot.go); they never go
	// through bookMap, which is keyed by this engine's own Zobrist hash.
	polyglotEntries []polyglotEntry
}

// NewBook creates an uninitialized opening book.
func NewBook() *Book {
	return &Book{bookMap: map[uint64]BookEntry{}}
}

// guards bookMap during parallel line/game processing
var bookLock sync.Mutex

// Initialize reads bookFile (joined onto bookPath, unless bookFile is empty
// in which case bookPath is used as the full path) in the given format and
// populates the book. If useCache is set it first tries to load a
// previously saved gob cache next to the book file, unless recreateCache
// forces a fresh read.
func (b *Book) Initialize(bookPath string, bookFile string, bookFormat BookFormat, useCache bool, recreateCache bool) error {
	if b.initialized {
		return nil
	}

	log.Info("Initializing Opening Book")

	fullPath := bookPath
	if bookFile != "" {
		fullPath = filepath.Join(bookPath, bookFile)
	}

	b.format = bookFormat

	if _, err := os.Stat(fullPath); err != nil {
		log.Errorf("File \"%s\" does not exist\n", fullPath)
		return err
	}

	if bookFormat == Polyglot {
		startTotal := time.Now()
		if err := b.initializePolyglot(fullPath); err != nil {
			log.Errorf("Polyglot book \"%s\" could not be read: %s\n", fullPath, err)
			return err
		}
		log.Infof("Total initialization time : %d ms\n", time.Since(startTotal).Milliseconds())
		b.initialized = true
		return nil
	}

	startTotal := time.Now()

	if useCache && !recreateCache {
		startReading := time.Now()
		hasCache, err := b.loadFromCache(fullPath)
		elapsedReading := time.Since(startReading)
		if err != nil {
			log.Warningf("Cache could not be loaded. Reading original data from \"%s\"", fullPath)
		}
		if hasCache {
			log.Infof("Finished reading cache from file in: %d ms\n", elapsedReading.Milliseconds())
			log.Infof("Book from cache file contains %d entries\n", len(b.bookMap))
			b.initialized = true
			return nil
		}
	}

	log.Infof("Reading opening book file: %s\n", fullPath)
	startReading := time.Now()
	lines, err := b.readFile(fullPath)
	if err != nil {
		log.Errorf("File \"%s\" could not be read: %s\n", fullPath, err)
		return err
	}
	elapsedReading := time.Since(startReading)
	log.Infof("Finished reading %d lines from file in: %d ms\n", len(*lines), elapsedReading.Milliseconds())

	startPosition := position.NewPosition()
	b.bookMap = make(map[uint64]BookEntry)
	b.rootEntry = uint64(startPosition.ZobristKey())
	b.bookMap[b.rootEntry] = BookEntry{ZobristKey: b.rootEntry, Counter: 0, Moves: []Successor{}}

	if parallel {
		log.Infof("Processing %d lines in parallel with format: %v\n", len(*lines), bookFormat)
	} else {
		log.Infof("Processing %d lines sequential with format: %v\n", len(*lines), bookFormat)
	}
	startProcessing := time.Now()
	b.process(lines, bookFormat)
	elapsedProcessing := time.Since(startProcessing)
	log.Infof("Finished processing %d lines in: %d ms\n", len(*lines), elapsedProcessing.Milliseconds())

	elapsedTotal := time.Since(startTotal)
	log.Infof("Book contains %d entries\n", len(b.bookMap))
	log.Infof("Total initialization time : %d ms\n", elapsedTotal.Milliseconds())

	if useCache {
		log.Infof("Saving to cache...")
		startSave := time.Now()
		cacheFile, nBytes, err := b.saveToCache(fullPath)
		if err != nil {
			log.Errorf("Error while saving to cache: %s\n", err)
		}
		elapsedSave := time.Since(startSave)
		log.Infof("Saved %s kB to cache %s in %d ms\n", out.Sprintf("%d", nBytes/1_024), cacheFile, elapsedSave.Milliseconds())
	}

	b.initialized = true
	return nil
}

// NumberOfEntries returns the number of positions known to the book.
func (b *Book) NumberOfEntries() int {
	if b.format == Polyglot {
		return len(b.polyglotEntries)
	}
	return len(b.bookMap)
}

// GetEntry returns a copy of the entry for key, if known.
func (b *Book) GetEntry(key Key) (BookEntry, bool) {
	entry, ok := b.bookMap[uint64(key)]
	return entry, ok
}

// Reset clears the book so it can be initialized again.
func (b *Book) Reset() {
	b.bookMap = map[uint64]BookEntry{}
	b.rootEntry = 0
	b.polyglotEntries = nil
	b.initialized = false
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// readFile reads a complete file into a slice of lines.
func (b *Book) readFile(bookPath string) (*[]string, error) {
	f, err := os.Open(bookPath)
	if err != nil {
		log.Errorf("File \"%s\" could not be read; %s\n", bookPath, err)
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("File \"%s\" could not be closed: %s\n", bookPath, err)
		}
	}()
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Errorf("Error while reading file \"%s\": %s\n", bookPath, err)
		return nil, err
	}
	return &lines, nil
}

// process dispatches all lines to the format specific processor.
func (b *Book) process(lines *[]string, format BookFormat) {
	switch format {
	case Simple:
		b.processSimple(lines)
	case San:
		b.processSan(lines)
	case Pgn:
		b.processPgn(lines)
	}
}

// processSimple processes all lines of Simple format, optionally using
// goroutines in parallel.
func (b *Book) processSimple(lines *[]string) {
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(*lines))
		for _, line := range *lines {
			go func(line string) {
				defer wg.Done()
				b.processSimpleLine(line)
			}(line)
		}
		wg.Wait()
	} else {
		for _, line := range *lines {
			b.processSimpleLine(line)
		}
	}
}

var regexSimpleUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])")

// processSimpleLine processes one line of Simple format and adds each move
// to the book.
func (b *Book) processSimpleLine(line string) {
	line = strings.TrimSpace(line)

	matches := regexSimpleUciMove.FindAllString(line, -1)
	if len(matches) == 0 {
		return
	}

	pos := position.NewPosition()

	bookLock.Lock()
	e, found := b.bookMap[b.rootEntry]
	if found {
		e.Counter++
		b.bookMap[b.rootEntry] = e
	} else {
		panic("root entry of book map not found")
	}
	bookLock.Unlock()

	// movegen is not thread safe - a new instance is needed per line
	mg := movegen.NewMoveGen()

	for _, moveString := range matches {
		if err := b.processSingleMove(moveString, mg, pos); err != nil {
			break
		}
	}
}

// processSan processes all lines of SAN format, optionally using goroutines
// in parallel.
func (b *Book) processSan(lines *[]string) {
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(*lines))
		for _, line := range *lines {
			go func(line string) {
				defer wg.Done()
				b.processSanLine(line)
			}(line)
		}
		wg.Wait()
	} else {
		for _, line := range *lines {
			b.processSanLine(line)
		}
	}
}

var regexResult = regexp.MustCompile(`((1-0)|(0-1)|(1/2-1/2)|(\*))$`)

// processPgn processes a PGN formatted file. PGN files have additional
// metadata and spread their move section over several lines; metadata is
// ignored and only the move section is used.
func (b *Book) processPgn(lines *[]string) {
	var gamesSlices [][]string

	startSlicing := time.Now()
	start := 0
	for i, l := range *lines {
		l = strings.TrimSpace(l)
		if regexResult.MatchString(l) {
			end := i + 1
			gamesSlices = append(gamesSlices, (*lines)[start:end])
			start = end
		}
	}
	log.Infof("Finished finding %d games from file in: %d ms\n", len(gamesSlices), time.Since(startSlicing).Milliseconds())

	startProcessing := time.Now()
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(gamesSlices))
		for _, gs := range gamesSlices {
			go func(gs []string) {
				defer wg.Done()
				b.processPgnGame(gs)
			}(gs)
		}
		wg.Wait()
	} else {
		for _, gs := range gamesSlices {
			b.processPgnGame(gs)
		}
	}
	log.Infof("Finished processing %d games from file in: %d ms\n", len(gamesSlices), time.Since(startProcessing).Milliseconds())
}

var regexTrailingComments = regexp.MustCompile(";.*$")
var regexTagPairs = regexp.MustCompile(`\[\w+ +".*?"\]`)
var regexNagAnnotation = regexp.MustCompile(`(\$\d{1,3})`)
var regexBracketComments = regexp.MustCompile(`{[^{}]*}`)
var regexReservedSymbols = regexp.MustCompile(`<[^<>]*>`)
var regexRavVariants = regexp.MustCompile(`\([^()]*\)`)

// processPgnGame processes one game comprising several input lines.
func (b *Book) processPgnGame(gameSlice []string) {
	var moveLine strings.Builder

	for _, l := range gameSlice {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "%") {
			continue
		}
		l = regexTagPairs.ReplaceAllString(l, "")
		l = regexResult.ReplaceAllString(l, "")
		l = regexTrailingComments.ReplaceAllString(l, "")
		l = strings.TrimSpace(l)
		if len(l) == 0 {
			continue
		}
		moveLine.WriteString(" ")
		moveLine.WriteString(l)
	}
	line := moveLine.String()

	line = regexNagAnnotation.ReplaceAllString(line, " ")
	line = regexBracketComments.ReplaceAllString(line, " ")
	line = regexReservedSymbols.ReplaceAllString(line, " ")
	for regexRavVariants.MatchString(line) {
		line = regexRavVariants.ReplaceAllString(line, " ")
	}

	b.processSanLine(line)
}

var regexSanLineStart = regexp.MustCompile(`^\d+\. ?`)
var regexSanLineCleanUpNumbers = regexp.MustCompile(`(\d+\.{1,3} ?)`)
var regexSanLineCleanUpResults = regexp.MustCompile(`(1/2|1|0)-(1/2|1|0)`)
var regexWhiteSpace = regexp.MustCompile(`\s+`)

// processSanLine processes one line of SAN format.
func (b *Book) processSanLine(line string) {
	line = strings.TrimSpace(line)

	if !regexSanLineStart.MatchString(line) {
		return
	}

	line = regexSanLineCleanUpNumbers.ReplaceAllString(line, "")
	line = regexSanLineCleanUpResults.ReplaceAllString(line, "")
	line = strings.TrimSpace(line)

	moveStrings := regexWhiteSpace.Split(line, -1)
	if len(moveStrings) == 0 {
		return
	}

	pos := position.NewPosition()

	bookLock.Lock()
	e, found := b.bookMap[b.rootEntry]
	if found {
		e.Counter++
		b.bookMap[b.rootEntry] = e
	} else {
		panic("root entry of book map not found")
	}
	bookLock.Unlock()

	mg := movegen.NewMoveGen()

	for _, moveString := range moveStrings {
		if err := b.processSingleMove(moveString, mg, pos); err != nil {
			log.Warningf("Move not valid %s on %s", moveString, pos.StringFen())
			break
		}
	}
}

var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")
var regexSanMove = regexp.MustCompile(`([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?`)

// processSingleMove processes a single move given as a string in either UCI
// or SAN notation, distinguished by pattern matching.
func (b *Book) processSingleMove(s string, mg *movegen.Movegen, pos *position.Position) error {
	move := MoveNone
	switch {
	case regexUciMove.MatchString(s):
		move = mg.GetMoveFromUci(pos, s)
	case regexSanMove.MatchString(s):
		move = mg.GetMoveFromSan(pos, s)
	}
	if !move.IsValid() {
		return errors.New("invalid move " + s)
	}
	curPosKey := uint64(pos.ZobristKey())
	pos.DoMove(move)
	nextPosKey := uint64(pos.ZobristKey())
	b.addToBook(curPosKey, nextPosKey, uint32(move.MoveOf()))
	return nil
}

// addToBook adds a move and its successor position to the book. Safe for
// concurrent use.
func (b *Book) addToBook(curPosKey uint64, nextPosKey uint64, move uint32) {
	bookLock.Lock()
	defer bookLock.Unlock()

	currentPosEntry, found := b.bookMap[curPosKey]
	if !found {
		log.Error("Could not find current position in book.")
		return
	}

	nextPosEntry, found := b.bookMap[nextPosKey]
	if found {
		nextPosEntry.Counter++
		b.bookMap[nextPosKey] = nextPosEntry
		return
	}
	b.bookMap[nextPosKey] = BookEntry{ZobristKey: nextPosKey, Counter: 1, Moves: nil}
	nextPosEntry = b.bookMap[nextPosKey]
	currentPosEntry.Moves = append(currentPosEntry.Moves, Successor{Move: move, NextEntry: nextPosEntry.ZobristKey})
	b.bookMap[curPosKey] = currentPosEntry
}

func (b *Book) loadFromCache(bookPath string) (bool, error) {
	cachePath := bookPath + ".cache"

	decodeFile, err := os.Open(cachePath)
	if err != nil {
		return false, err
	}
	defer decodeFile.Close()

	decoder := gob.NewDecoder(decodeFile)

	bookLock.Lock()
	err = decoder.Decode(&b.bookMap)
	bookLock.Unlock()
	if err != nil {
		return false, err
	}

	p := position.NewPosition()
	b.rootEntry = uint64(p.ZobristKey())

	return true, nil
}

func (b *Book) saveToCache(bookPath string) (string, int64, error) {
	cachePath := bookPath + ".cache"

	encodeFile, err := os.Create(cachePath)
	if err != nil {
		return cachePath, 0, err
	}
	enc := gob.NewEncoder(encodeFile)

	bookLock.Lock()
	if err = enc.Encode(b.bookMap); err != nil {
		bookLock.Unlock()
		return cachePath, 0, err
	}
	bookLock.Unlock()

	if err := encodeFile.Close(); err != nil {
		return cachePath, 0, err
	}

	fileInfo, err := os.Stat(cachePath)
	if err != nil {
		return cachePath, 0, err
	}
	return cachePath, fileInfo.Size(), nil
}
