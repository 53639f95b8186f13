/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/crypto/sha3"
)

// salsaBufLen is the number of keystream bytes produced per refill.
const salsaBufLen = 512

// Salsa20Source is a deterministic rand.Source reading from the
// keystream of the Salsa20 stream cipher. The key is the SHA3-256
// digest of the seed and consecutive buffers use consecutive nonces.
type Salsa20Source struct {
	key   [32]byte
	nonce uint64
	buf   []byte
	pos   int
}

// NewSalsa20Source returns a Salsa20Source seeded with seed.
func NewSalsa20Source(seed uint64) *Salsa20Source {
	s := &Salsa20Source{
		buf: make([]byte, salsaBufLen),
	}
	s.Seed(seed)
	return s
}

// Seed resets the stream to the keystream derived from seed.
func (s *Salsa20Source) Seed(seed uint64) {
	seedBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(seedBytes, seed)

	s.key = sha3.Sum256(seedBytes)
	s.nonce = 0
	s.pos = len(s.buf)
}

// Uint64 returns the next 8 bytes of the keystream as a
// little-endian integer.
func (s *Salsa20Source) Uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8
	return v
}

func (s *Salsa20Source) refill() {
	if len(s.buf) != salsaBufLen {
		s.buf = make([]byte, salsaBufLen)
	}
	in := make([]byte, salsaBufLen) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.nonce)

	salsa20.XORKeyStream(s.buf, in, nonce, &s.key)

	s.nonce++
	s.pos = 0
}
