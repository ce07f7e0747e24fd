package index

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	pdbMagic         = "PDB1"
	pdbVersion       = 1
	pdbPackingNibble = 0
	pdbPackingByte   = 1
	pdbUnsetNibble   = 0xF
	pdbUnsetByte     = 0xFF
	pdbMaxDepth      = 14
)

// PatternDatabase is a fixed-size array of "minimum moves to reach this
// subspace state from solved", stored 4-bit packed (two entries per byte)
// until inflate() unpacks it to one byte per entry for branch-free lookup.
type PatternDatabase struct {
	n        uint64
	packed   []byte // nibble-packed, two entries per byte
	inflated []byte // nil until inflate() is called
	written  uint64 // count of populated cells, kept in sync by SetNumMoves
}

// NewPatternDatabase allocates a PDB of size n, with every cell unset.
func NewPatternDatabase(n uint64) *PatternDatabase {
	db := &PatternDatabase{n: n}
	db.packed = make([]byte, (n+1)/2)
	db.Reset()
	return db
}

// Size returns the number of addressable entries.
func (db *PatternDatabase) Size() uint64 { return db.n }

// Reset sets every cell to "unset".
func (db *PatternDatabase) Reset() {
	for i := range db.packed {
		db.packed[i] = 0xFF
	}
	db.inflated = nil
	db.written = 0
}

// GetNumMoves returns the depth stored at idx (pdbUnsetByte-sentinel
// semantics collapse to pdbUnsetNibble*1 when not inflated).
func (db *PatternDatabase) GetNumMoves(idx uint64) uint8 {
	if db.inflated != nil {
		return db.inflated[idx]
	}
	b := db.packed[idx/2]
	if idx%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

// SetNumMoves writes d at idx, but only if d is strictly smaller than the
// value already stored there (the "minimum depth" invariant). Returns true
// if the write happened.
func (db *PatternDatabase) SetNumMoves(idx uint64, d uint8) bool {
	cur := db.GetNumMoves(idx)
	wasUnset := cur == pdbUnsetNibble || cur == pdbUnsetByte
	if !wasUnset && d >= cur {
		return false
	}
	if db.inflated != nil {
		db.inflated[idx] = d
	} else {
		b := db.packed[idx/2]
		if idx%2 == 0 {
			db.packed[idx/2] = (b & 0xF0) | (d & 0x0F)
		} else {
			db.packed[idx/2] = (b & 0x0F) | (d << 4)
		}
	}
	if wasUnset {
		db.written++
	}
	return true
}

// Unset reports whether idx has never been written.
func (db *PatternDatabase) Unset(idx uint64) bool {
	v := db.GetNumMoves(idx)
	return v == pdbUnsetNibble || v == pdbUnsetByte
}

// Inflate converts the 4-bit packed form to one byte per entry, trading
// memory for branch-free lookups. Safe to call more than once.
func (db *PatternDatabase) Inflate() {
	if db.inflated != nil {
		return
	}
	buf := make([]byte, db.n)
	for i := uint64(0); i < db.n; i++ {
		v := db.GetNumMoves(i)
		if v == pdbUnsetNibble {
			v = pdbUnsetByte
		}
		buf[i] = v
	}
	db.inflated = buf
}

// FullyPopulated reports whether every cell holds a real depth. O(1): it
// consults the running count SetNumMoves maintains rather than rescanning,
// since this is checked after every expansion during BFS/IDDFS construction.
func (db *PatternDatabase) FullyPopulated() bool {
	return db.written == db.n
}

// ToFile writes the database in the binary format described in
// spec.md §6.1: magic, version, packing, reserved, entry count, payload.
func (db *PatternDatabase) ToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("index: pdb write %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(pdbMagic); err != nil {
		return err
	}
	packing := byte(pdbPackingNibble)
	payload := db.packed
	if db.inflated != nil {
		packing = pdbPackingByte
		payload = db.inflated
	}
	header := []byte{pdbVersion, packing, 0, 0}
	if _, err := w.Write(header); err != nil {
		return err
	}
	var countBuf [8]byte
	binary.LittleEndian.PutUint64(countBuf[:], db.n)
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return w.Flush()
}

// FromFile loads a database previously written by ToFile. It returns
// false (with no error) if the file is missing or malformed; a
// malformed file never leaves the database partially populated.
func (db *PatternDatabase) FromFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil || string(magic) != pdbMagic {
		return false, nil
	}
	header := make([]byte, 4)
	if _, err := io.ReadFull(r, header); err != nil || header[0] != pdbVersion {
		return false, nil
	}
	packing := header[1]

	var countBuf [8]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return false, nil
	}
	n := binary.LittleEndian.Uint64(countBuf[:])
	if n != db.n {
		return false, nil
	}

	var payloadLen int
	if packing == pdbPackingByte {
		payloadLen = int(n)
	} else {
		payloadLen = int((n + 1) / 2)
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return false, nil
	}

	if packing == pdbPackingByte {
		db.inflated = payload
		db.packed = nil
	} else {
		db.packed = payload
		db.inflated = nil
	}
	db.written = db.n
	return true, nil
}
