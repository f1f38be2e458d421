package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"math/rand/v2"

	"go.dedis.ch/kyber/v4/util/random"
	"go.dedis.ch/kyber/v4/xof/blake2xb"
)

// Shuffle permutes the deck uniformly using src.
func (d *Deck) Shuffle(src rand.Source) {
	r := rand.New(src)
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// NewSource returns a deterministic source: the same seed always produces
// the same shuffles. The stream is the BLAKE2Xb output keyed by seed.
func NewSource(seed []byte) rand.Source {
	return &streamSource{stream: blake2xb.New(seed)}
}

// NewRandomSource returns a source backed by the system randomness.
func NewRandomSource() rand.Source {
	return &streamSource{stream: random.New()}
}

// streamSource adapts a key stream to rand.Source.
type streamSource struct {
	stream cipher.Stream
	buf    [8]byte
}

func (s *streamSource) Uint64() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
