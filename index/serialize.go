// Copyright © 2023-2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package index

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/shenwei356/xopen"
	"github.com/twotwotwo/sorts/sortutil"
)

// ErrInvalidLine means a line did not parse as KEY;P1;P2;...;Pn; per
// spec.md §6.2.
var ErrInvalidLine = errors.New("index: invalid line, expected KEY;P1;...;Pn;")

// Save writes one line per key: KEY;P1;P2;...;Pn; (trailing ';'
// present). Keys are emitted in Go map iteration order, which is not
// sorted and can differ from one call to the next; Save does not sort
// keys (positions within a line are sorted), so two saves of the same
// Index need not be byte-identical.
func (idx *Index) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for key, positions := range idx.buckets {
		if _, err := bw.WriteString(key); err != nil {
			return errors.Wrap(err, "index: writing key")
		}
		if err := bw.WriteByte(';'); err != nil {
			return errors.Wrap(err, "index: writing separator")
		}
		sorted := make([]uint64, len(positions))
		copy(sorted, positions)
		sortutil.Uint64s(sorted)
		for _, p := range sorted {
			if _, err := bw.WriteString(strconv.FormatUint(p, 10)); err != nil {
				return errors.Wrap(err, "index: writing position")
			}
			if err := bw.WriteByte(';'); err != nil {
				return errors.Wrap(err, "index: writing separator")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "index: writing newline")
		}
	}
	return bw.Flush()
}

// SaveToFile writes the Index to path, with optional .gz/.xz/.zst/.bz2
// compression inferred from the extension.
func (idx *Index) SaveToFile(path string) error {
	outfh, err := xopen.Wopen(path)
	if err != nil {
		return errors.Wrapf(err, "index: opening %s for writing", path)
	}
	defer outfh.Close()

	return idx.Save(outfh)
}

// Load reads an Index in the format written by Save. Empty lines are
// ignored. Every non-empty line must be KEY;P1;...;Pn; with a trailing
// ';'; any non-digit byte in a position field is a fatal parse error
// (stricter than the original's loose atoi-style parsing, per spec.md
// §9's redesign note).
func Load(r io.Reader) (*Index, error) {
	idx := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if !strings.HasSuffix(line, ";") {
			return nil, ErrInvalidLine
		}
		fields := strings.Split(line[:len(line)-1], ";")
		if len(fields) == 0 {
			return nil, ErrInvalidLine
		}
		key := fields[0]
		positions := make([]uint64, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			if tok == "" {
				return nil, ErrInvalidLine
			}
			p, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				return nil, errors.Wrap(ErrInvalidLine, err.Error())
			}
			positions = append(positions, p)
		}
		idx.buckets[key] = positions
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "index: scanning index file")
	}

	return idx, nil
}

// NewFromFile reads an Index from path, with optional .gz/.xz/.zst/.bz2
// decompression inferred from the extension.
func NewFromFile(path string) (*Index, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "index: opening %s for reading", path)
	}
	defer fh.Close()

	return Load(fh)
}
