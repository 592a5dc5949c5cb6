package randutil

import (
	"encoding/binary"
	"math/bits"
	// rand "math/rand/v2"

	"github.com/aead/chacha20/chacha"
)

// GameSeed is the fixed seed every fresh or reset game starts from.
const GameSeed uint64 = 2024

const (
	pcgMul = 6364136223846793005
	pcgInc = 11634580027462260723

	rounds = 12
	// Output is produced four 64-byte blocks at a time.
	blocksPerRefill = 4
	bufWords        = blocksPerRefill * 16
)

// StdRand is a ChaCha12 stream generator seeded from a single uint64.
// Given the same seed it yields the same stream on every platform, which is
// what makes random boards reproducible across restarts.
type StdRand struct {
	key    [8]uint32
	stream *chacha.Cipher
	buf    [bufWords]uint32
	idx    int
}

// math/rand/v2 needs Go 1.22+; restore this assertion and the import when the toolchain allows.
// var _ rand.Source = (*StdRand)(nil)

// NewStdRand expands seed into a 256-bit key with the PCG32 step and returns
// a generator positioned at the start of its stream.
func NewStdRand(seed uint64) *StdRand {
	r := &StdRand{}
	r.Seed(seed)
	return r
}

// Seed rewinds the generator to the start of the stream for seed.
func (r *StdRand) Seed(seed uint64) {
	state := seed
	var key [chacha.KeySize]byte
	for i := range r.key {
		state = state*pcgMul + pcgInc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		r.key[i] = bits.RotateLeft32(xorshifted, -rot)
		binary.LittleEndian.PutUint32(key[i*4:], r.key[i])
	}

	// 8-byte nonce: zero stream id, 64-bit block counter starting at 0.
	stream, err := chacha.NewCipher(make([]byte, chacha.NonceSize), key[:], rounds)
	if err != nil {
		panic("randutil: " + err.Error())
	}
	r.stream = stream
	r.idx = bufWords
}

// Uint32 returns the next 32-bit word of the stream.
func (r *StdRand) Uint32() uint32 {
	if r.idx >= bufWords {
		r.refill()
	}
	v := r.buf[r.idx]
	r.idx++
	return v
}

// Uint64 combines the next two words, low word first.
func (r *StdRand) Uint64() uint64 {
	lo := uint64(r.Uint32())
	hi := uint64(r.Uint32())
	return hi<<32 | lo
}

// Bool is a fair coin flip taken from the most significant bit of the next word.
func (r *StdRand) Bool() bool {
	return int32(r.Uint32()) < 0
}

func (r *StdRand) refill() {
	var ks [bufWords * 4]byte
	r.stream.XORKeyStream(ks[:], ks[:])
	for i := range r.buf {
		r.buf[i] = binary.LittleEndian.Uint32(ks[i*4:])
	}
	r.idx = 0
}
