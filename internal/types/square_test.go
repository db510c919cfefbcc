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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareType(t *testing.T) {
	tests := []struct {
		value    Square
		expected int
	}{
		{SqA8, 0},
		{SqH1, 63},
		{SqNone, 64},
		{Square(100), 100},
	}
	for _, test := range tests {
		assert.EqualValues(t, test.expected, test.value)
	}
}

func TestValidSquare(t *testing.T) {
	tests := []struct {
		value    Square
		expected bool
	}{
		{SqA8, true},
		{SqH1, true},
		{SqNone, false},
		{Square(100), false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.IsValid())
	}
}

func TestSquareStr(t *testing.T) {
	tests := []struct {
		value    Square
		expected string
	}{
		{SqA8, "a8"},
		{SqH1, "h1"},
		{SqA1, "a1"},
		{SqNone, "-"},
		{Square(100), "-"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.String())
	}
}

func TestSquareFromFileRank(t *testing.T) {
	tests := []struct {
		file   File
		rank   Rank
		square Square
	}{
		{FileA, Rank8, SqA8},
		{FileH, Rank1, SqH1},
		{FileNone, RankNone, SqNone},
		{FileA, Rank(50), SqNone},
	}
	for _, test := range tests {
		assert.Equal(t, test.square, SquareOf(test.file, test.rank))
	}
}

func TestSquareDir(t *testing.T) {
	// North moves towards rank 8, i.e. a lower index.
	assert.EqualValues(t, SqA7, SqA8.To(South))
	assert.EqualValues(t, SqA8, SqA7.To(North))
	assert.EqualValues(t, SqB8, SqA8.To(East))
	assert.EqualValues(t, SqNone, SqA8.To(North))
	assert.EqualValues(t, SqNone, SqA8.To(West))
	assert.EqualValues(t, SqNone, SqH1.To(South))
	assert.EqualValues(t, SqNone, SqH1.To(East))
	assert.EqualValues(t, SqH2, SqH1.To(North))
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SqA1, MakeSquare("a1"))
	assert.Equal(t, SqH8, MakeSquare("h8"))
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("aa"))
}
