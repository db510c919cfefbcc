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

// Package version holds the engine's build version. buildVersion and
// buildTime are meant to be set at link time via -ldflags, e.g.:
//
//	go build -ldflags "-X github.com/corvidchess/corvid/internal/version.buildVersion=1.2.3 \
//	  -X github.com/corvidchess/corvid/internal/version.buildTime=2026-07-29T12:00:00Z"
package version

import (
	"fmt"
	"runtime"
)

var (
	buildVersion = "(devel)"
	buildTime    = "(unknown)"
)

// Version returns a single-line version string combining the build
// version, the Go toolchain used to build it, and the build time.
func Version() string {
	return fmt.Sprintf("%s (built with %s at %s)", buildVersion, runtime.Version(), buildTime)
}
