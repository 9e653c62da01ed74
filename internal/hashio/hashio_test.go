package hashio

import (
	"strings"
	"testing"
)

func TestHashReader(t *testing.T) {
	t.Parallel()

	// Known digests of "abc".
	digest, err := HashReader(strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("HashReader() error = %v", err)
	}

	if digest.SHA1 != "a9993e364706816aba3e25717850c26c9cd0d89d" {
		t.Errorf("SHA1 = %q", digest.SHA1)
	}
	if digest.CRC32 != "352441c2" {
		t.Errorf("CRC32 = %q", digest.CRC32)
	}
	if digest.MD5 != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("MD5 = %q", digest.MD5)
	}
	if digest.Size != 3 {
		t.Errorf("Size = %d", digest.Size)
	}
}

func TestHashReaderEmpty(t *testing.T) {
	t.Parallel()

	digest, err := HashReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("HashReader() error = %v", err)
	}
	if digest.SHA1 != "da39a3ee5e6b4b0d3255bfef95601890afd80709" {
		t.Errorf("SHA1 of empty stream = %q", digest.SHA1)
	}
	if digest.Size != 0 {
		t.Errorf("Size = %d", digest.Size)
	}
}

func TestHashFLACRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := HashFLAC(strings.NewReader("not a flac stream")); err == nil {
		t.Error("HashFLAC() on garbage should fail")
	}
}
