package index

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGarbageFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func TestPatternDatabaseStartsUnsetAndEmpty(t *testing.T) {
	db := NewPatternDatabase(100)
	if db.FullyPopulated() {
		t.Fatal("a freshly allocated database reports fully populated")
	}
	for i := uint64(0); i < 100; i++ {
		if !db.Unset(i) {
			t.Fatalf("index %d reports set on a freshly allocated database", i)
		}
	}
}

func TestSetNumMovesOnlyShrinks(t *testing.T) {
	db := NewPatternDatabase(4)
	if !db.SetNumMoves(0, 5) {
		t.Fatal("first write to an unset cell should succeed")
	}
	if db.SetNumMoves(0, 7) {
		t.Fatal("a larger depth should not overwrite a smaller one")
	}
	if got := db.GetNumMoves(0); got != 5 {
		t.Fatalf("GetNumMoves(0) = %d, want 5", got)
	}
	if !db.SetNumMoves(0, 2) {
		t.Fatal("a strictly smaller depth should overwrite")
	}
	if got := db.GetNumMoves(0); got != 2 {
		t.Fatalf("GetNumMoves(0) = %d, want 2", got)
	}
}

func TestFullyPopulatedTracksWrittenCount(t *testing.T) {
	const n = 10
	db := NewPatternDatabase(n)
	for i := uint64(0); i < n-1; i++ {
		db.SetNumMoves(i, uint8(i%14))
		if db.FullyPopulated() {
			t.Fatalf("reported fully populated after only %d of %d cells written", i+1, n)
		}
	}
	db.SetNumMoves(n-1, 1)
	if !db.FullyPopulated() {
		t.Fatal("did not report fully populated after every cell was written")
	}
}

func TestInflatePreservesValues(t *testing.T) {
	const n = 50
	db := NewPatternDatabase(n)
	for i := uint64(0); i < n; i++ {
		db.SetNumMoves(i, uint8(i%13))
	}
	db.Inflate()
	for i := uint64(0); i < n; i++ {
		if got := db.GetNumMoves(i); got != uint8(i%13) {
			t.Errorf("GetNumMoves(%d) after inflate = %d, want %d", i, got, i%13)
		}
	}
}

func TestPatternDatabaseFileRoundTrip(t *testing.T) {
	const n = 37
	db := NewPatternDatabase(n)
	for i := uint64(0); i < n; i++ {
		db.SetNumMoves(i, uint8((i*3+1)%14))
	}

	path := filepath.Join(t.TempDir(), "test.pdb")
	if err := db.ToFile(path); err != nil {
		t.Fatalf("ToFile: %v", err)
	}

	loaded := NewPatternDatabase(n)
	ok, err := loaded.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if !ok {
		t.Fatal("FromFile reported false for a file it just wrote")
	}
	for i := uint64(0); i < n; i++ {
		want := uint8((i*3 + 1) % 14)
		if got := loaded.GetNumMoves(i); got != want {
			t.Errorf("GetNumMoves(%d) after round trip = %d, want %d", i, got, want)
		}
	}
}

func TestPatternDatabaseFileRoundTripInflated(t *testing.T) {
	const n = 20
	db := NewPatternDatabase(n)
	for i := uint64(0); i < n; i++ {
		db.SetNumMoves(i, uint8(i%9))
	}
	db.Inflate()

	path := filepath.Join(t.TempDir(), "inflated.pdb")
	if err := db.ToFile(path); err != nil {
		t.Fatalf("ToFile: %v", err)
	}

	loaded := NewPatternDatabase(n)
	ok, err := loaded.FromFile(path)
	if err != nil || !ok {
		t.Fatalf("FromFile: ok=%v err=%v", ok, err)
	}
	for i := uint64(0); i < n; i++ {
		if got := loaded.GetNumMoves(i); got != uint8(i%9) {
			t.Errorf("GetNumMoves(%d) = %d, want %d", i, got, i%9)
		}
	}
}

func TestFromFileMissingReturnsFalseNoError(t *testing.T) {
	db := NewPatternDatabase(10)
	ok, err := db.FromFile(filepath.Join(t.TempDir(), "does-not-exist.pdb"))
	if err != nil {
		t.Fatalf("FromFile on a missing file returned an error: %v", err)
	}
	if ok {
		t.Fatal("FromFile on a missing file reported success")
	}
}

func TestFromFileSizeMismatchReturnsFalse(t *testing.T) {
	db := NewPatternDatabase(10)
	path := filepath.Join(t.TempDir(), "size-mismatch.pdb")
	if err := db.ToFile(path); err != nil {
		t.Fatalf("ToFile: %v", err)
	}

	other := NewPatternDatabase(20)
	ok, err := other.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if ok {
		t.Fatal("FromFile accepted a file whose entry count does not match")
	}
}

func TestFromFileCorruptedMagicReturnsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdb")
	if err := writeGarbageFile(path, []byte("nope, not a pdb file at all")); err != nil {
		t.Fatalf("writeGarbageFile: %v", err)
	}

	db := NewPatternDatabase(10)
	ok, err := db.FromFile(path)
	if err != nil {
		t.Fatalf("FromFile on a corrupted file returned an error rather than ok=false: %v", err)
	}
	if ok {
		t.Fatal("FromFile accepted a file with a bad magic header")
	}
	if db.FullyPopulated() {
		t.Fatal("a failed FromFile left the database appearing fully populated")
	}
}
