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
	"strconv"
	"strings"
)

// Value is a centipawn evaluation or search score.
type Value int16

// Key is a zobrist hash key identifying a chess position (or a subset of
// its state, e.g. pawn structure only).
type Key uint64

// MaxDepth bounds the ply count a search can reach; used to carve out the
// mate-score band near ValueCheckMate.
const MaxDepth = 128

// Constants for values.
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueOne                Value = 1
	ValueInf                Value = 15_000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = 10_000
	ValueMin                Value = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// IsValid reports whether v lies within the legal score range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a mate distance rather than
// a centipawn score.
func (v Value) IsCheckMateValue() bool {
	a := abs(int(v))
	return a > int(ValueCheckMateThreshold) && a <= int(ValueCheckMate)
}

// String renders v the way UCI "info score" expects: "cp <n>", "mate <n>"
// or "N/A".
func (v Value) String() string {
	var os strings.Builder
	switch {
	case v.IsCheckMateValue():
		os.WriteString("mate ")
		if v < ValueZero {
			os.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - abs(int(v))
		os.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		os.WriteString("N/A")
	default:
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}

// ValueType marks how a transposition table entry's value relates to the
// true minimax value of the position it was stored for.
type ValueType int8

const (
	Vnone ValueType = 0
	EXACT ValueType = 1
	LOWER ValueType = 2
	UPPER ValueType = 3
	Vlength = 4
)

// IsValid reports whether vt is one of the defined value types.
func (vt ValueType) IsValid() bool {
	return vt >= Vnone && vt < Vlength
}

var valueTypeToString = [Vlength]string{"NoneValue", "ExactValue", "LowerBound", "UpperBound"}

// String returns the name of vt.
func (vt ValueType) String() string {
	return valueTypeToString[vt]
}
