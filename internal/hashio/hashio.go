// Package hashio computes the content hashes catalogue verification needs.
// Everything hashes in one pass through an io.MultiWriter; FLAC-backed audio
// tracks decode to raw PCM first so their hashes line up with the raw .bin
// entries reference catalogues carry.
package hashio

import (
	"crypto/md5"  //nolint:gosec // catalogue compatibility, not security
	"crypto/sha1" //nolint:gosec // catalogue compatibility, not security
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"hash/crc32"
	"io"

	"github.com/mewkiz/flac"
)

// Digest holds the hashes and byte count of one stream.
type Digest struct {
	SHA1  string
	CRC32 string
	MD5   string
	Size  uint64
}

// hashSet bundles the three digests behind one writer.
type hashSet struct {
	sha hash.Hash
	crc hash.Hash32
	md  hash.Hash
	w   io.Writer
	n   uint64
}

func newHashSet() *hashSet {
	hs := &hashSet{
		sha: sha1.New(), //nolint:gosec // catalogue compatibility
		crc: crc32.NewIEEE(),
		md:  md5.New(), //nolint:gosec // catalogue compatibility
	}
	hs.w = io.MultiWriter(hs.sha, hs.crc, hs.md)
	return hs
}

func (hs *hashSet) Write(p []byte) (int, error) {
	n, err := hs.w.Write(p)
	hs.n += uint64(n)
	return n, err //nolint:wrapcheck // writer passthrough
}

func (hs *hashSet) digest() Digest {
	return Digest{
		SHA1:  hex.EncodeToString(hs.sha.Sum(nil)),
		CRC32: fmt.Sprintf("%08x", hs.crc.Sum32()),
		MD5:   hex.EncodeToString(hs.md.Sum(nil)),
		Size:  hs.n,
	}
}

// HashReader hashes everything r yields.
func HashReader(r io.Reader) (Digest, error) {
	hs := newHashSet()
	if _, err := io.Copy(hs, r); err != nil {
		return Digest{}, fmt.Errorf("hash stream: %w", err)
	}
	return hs.digest(), nil
}

// HashFLAC decodes a FLAC stream to interleaved 16-bit little-endian PCM,
// the byte layout of a raw CD audio track, and hashes the decoded samples.
func HashFLAC(r io.Reader) (Digest, error) {
	stream, err := flac.New(r)
	if err != nil {
		return Digest{}, fmt.Errorf("open flac stream: %w", err)
	}
	defer func() { _ = stream.Close() }()

	hs := newHashSet()
	var sample [2]byte
	for {
		audioFrame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Digest{}, fmt.Errorf("decode flac frame: %w", err)
		}
		if len(audioFrame.Subframes) == 0 {
			continue
		}

		channels := len(audioFrame.Subframes)
		if channels > 2 {
			channels = 2
		}
		for i := 0; i < audioFrame.Subframes[0].NSamples; i++ {
			for ch := 0; ch < channels; ch++ {
				binary.LittleEndian.PutUint16(sample[:], uint16(audioFrame.Subframes[ch].Samples[i])) //nolint:gosec // 16-bit samples
				if _, err := hs.Write(sample[:]); err != nil {
					return Digest{}, fmt.Errorf("hash flac samples: %w", err)
				}
			}
		}
	}

	return hs.digest(), nil
}
