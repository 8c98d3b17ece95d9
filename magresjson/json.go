/*
 * json.go, part of gomagres.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package magresjson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gomagres"
)

// Compression is the compression used for a file.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

// CompressionOf returns the compression that corresponds to the
// extension of name: ".gz" for gzip, ".zst" for z-standard, and none otherwise.
func CompressionOf(name string) Compression {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".gz"):
		return Gzip
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return Zstd
	}
	return None
}

//*zstd.Decoder has a Close method that returns nothing,
//so it doesn't implement io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func newReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdCloser{d}, nil
	}
	return io.NopCloser(r), nil
}

func newWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case Zstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Read decodes one magres tree, in JSON, from r.
func Read(r io.Reader) (*magres.Data, error) {
	data := new(magres.Data)
	dec := json.NewDecoder(r)
	if err := dec.Decode(data); err != nil {
		return nil, fmt.Errorf("magresjson.Read: %w", err)
	}
	return data, nil
}

// ReadFile reads the magres tree in the file name. The file can be
// compressed with gzip or zstd, which is decided from the extension.
func ReadFile(name string) (*magres.Data, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("magresjson.ReadFile: %w", err)
	}
	defer f.Close()
	r, err := newReader(bufio.NewReader(f), CompressionOf(name))
	if err != nil {
		return nil, fmt.Errorf("magresjson.ReadFile: %s: %w", name, err)
	}
	defer r.Close()
	data, err := Read(r)
	if err != nil {
		return nil, fmt.Errorf("magresjson.ReadFile: %s: %w", name, err)
	}
	return data, nil
}

// Write encodes data as JSON into w.
func Write(w io.Writer, data *magres.Data) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("magresjson.Write: %w", err)
	}
	return nil
}

// WriteFile writes data to the file name, compressed according to its extension.
func WriteFile(name string, data *magres.Data) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("magresjson.WriteFile: %w", err)
	}
	defer func() {
		if err2 := f.Close(); err == nil && err2 != nil {
			err = fmt.Errorf("magresjson.WriteFile: %w", err2)
		}
	}()
	w, err := newWriter(f, CompressionOf(name))
	if err != nil {
		return fmt.Errorf("magresjson.WriteFile: %s: %w", name, err)
	}
	if err := Write(w, data); err != nil {
		w.Close()
		return fmt.Errorf("magresjson.WriteFile: %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("magresjson.WriteFile: %s: %w", name, err)
	}
	return nil
}

// Load reads the file name and builds the linked structure from it.
func Load(name string, options ...*magres.Options) (*magres.Atoms, error) {
	data, err := ReadFile(name)
	if err != nil {
		return nil, err
	}
	A, err := magres.New(data, options...)
	if err != nil {
		return nil, fmt.Errorf("magresjson.Load: %s: %w", name, err)
	}
	return A, nil
}
