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

package mcs

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/shenwei356/kmismatch/bitseq"
	"github.com/shenwei356/kmismatch/form"
	"github.com/shenwei356/xopen"
	"github.com/twotwotwo/sorts/sortutil"
)

// ErrEmptyLine means a zero-length line was found where a Form was
// expected: the bit-exact format of spec.md §6.2 rejects these.
var ErrEmptyLine = errors.New("mcs: empty line in MCS file")

// Save writes one Form per line, MSB-to-LSB '0'/'1' ASCII, to w. Forms
// are sorted by their underlying integer first, so two MCS values built
// from the same greedy run produce byte-identical output regardless of
// the order Build happened to append them in.
func (m *MCS) Save(w io.Writer) error {
	ints := make([]uint64, len(m.Forms))
	for i, f := range m.Forms {
		ints[i] = f.Uint64()
	}
	sortutil.Uint64s(ints)

	bw := bufio.NewWriter(w)
	for _, v := range ints {
		f, err := form.New(v)
		if err != nil {
			return errors.Wrap(err, "mcs: re-validating sorted form")
		}
		if _, err := bw.WriteString(f.String()); err != nil {
			return errors.Wrap(err, "mcs: writing form")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "mcs: writing newline")
		}
	}
	return bw.Flush()
}

// SaveToFile writes the MCS to path, with optional .gz/.xz/.zst/.bz2
// compression inferred from the extension.
func (m *MCS) SaveToFile(path string) error {
	outfh, err := xopen.Wopen(path)
	if err != nil {
		return errors.Wrapf(err, "mcs: opening %s for writing", path)
	}
	defer outfh.Close()

	return m.Save(outfh)
}

// Load reads an MCS in the format written by Save. Length is derived
// from the longest form read; the caller-supplied k is not recoverable
// from the file alone, so Load leaves K unset (0); callers
// that need it should track k alongside the saved path.
func Load(r io.Reader) (*MCS, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var forms []form.Form
	length := 0
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			return nil, ErrEmptyLine
		}
		seq, err := bitseq.Parse(line)
		if err != nil {
			return nil, errors.Wrap(err, "mcs: parsing form line")
		}
		f, err := form.New(seq.Uint64())
		if err != nil {
			return nil, errors.Wrap(err, "mcs: validating form")
		}
		forms = append(forms, f)
		if f.Size() > length {
			length = f.Size()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "mcs: scanning MCS file")
	}

	return &MCS{Length: length, Forms: forms}, nil
}

// NewFromFile reads an MCS from path, with optional .gz/.xz/.zst/.bz2
// decompression inferred from the extension.
func NewFromFile(path string) (*MCS, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, errors.Wrapf(err, "mcs: opening %s for reading", path)
	}
	defer fh.Close()

	return Load(fh)
}
