package soak

import (
	"encoding/binary"
	"hash"

	"spscring/utils"
)

// recordSize is the wire size of a Record fed to the digests.
const recordSize = 32

// Record is the soak payload: a sequence number and three words derived
// from it, 32 bytes in total.
type Record struct {
	Seq     uint64
	Payload [3]uint64
}

// MakeRecord builds the deterministic record for seq.
func MakeRecord(seq uint64) Record {
	return Record{
		Seq: seq,
		Payload: [3]uint64{
			utils.Mix64(seq*3 + 1),
			utils.Mix64(seq*3 + 2),
			utils.Mix64(seq*3 + 3),
		},
	}
}

// Valid reports whether the payload still matches the sequence number.
func (r *Record) Valid() bool {
	return *r == MakeRecord(r.Seq)
}

// hashInto feeds the little-endian encoding of r to h via scratch.
func (r *Record) hashInto(h hash.Hash, scratch *[recordSize]byte) {
	binary.LittleEndian.PutUint64(scratch[0:], r.Seq)
	binary.LittleEndian.PutUint64(scratch[8:], r.Payload[0])
	binary.LittleEndian.PutUint64(scratch[16:], r.Payload[1])
	binary.LittleEndian.PutUint64(scratch[24:], r.Payload[2])
	h.Write(scratch[:])
}
