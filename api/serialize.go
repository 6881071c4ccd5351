package api

import (
	"encoding/binary"
	"fmt"

	"github.com/nokotan8/kzg-commitments/internal/kzg"
)

// g1Size, g2Size are the compressed encoding widths gnark-crypto uses for
// BLS12-381; canonical framing here only orders and concatenates these,
// the point compression itself is the host library's.
const (
	g1Size = 48
	g2Size = 96
)

// SerializePublicKey writes the SRS as: uint32 length-prefixed G1 powers,
// then the G2 generator, then G2^alpha, each compressed.
func SerializePublicKey(pk *kzg.PublicKey) []byte {
	out := make([]byte, 0, 4+len(pk.G1Powers)*g1Size+2*g2Size)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(pk.G1Powers)))
	out = append(out, lenBuf[:]...)
	for _, p := range pk.G1Powers {
		b := p.Bytes()
		out = append(out, b[:]...)
	}
	g2g := pk.G2Gen.Bytes()
	out = append(out, g2g[:]...)
	g2a := pk.G2Alpha.Bytes()
	out = append(out, g2a[:]...)
	return out
}

// SerializeG1s concatenates a list of commitments or single-scheme
// witnesses (KZG, GWC, MBB's two-element proof once flattened) in order,
// each compressed. This is the one shared framing every scheme's
// Commitment/Proof bottoms out to, since every scheme's transmitted
// artifact is, at the wire level, a list of G1 elements.
func SerializeG1s(points []kzg.G1) []byte {
	out := make([]byte, 0, len(points)*g1Size)
	for _, p := range points {
		b := p.Bytes()
		out = append(out, b[:]...)
	}
	return out
}

// SerializeKZGProof flattens the n×n witness matrix row-major into the
// same G1-list framing SerializeG1s uses, prefixed with the row count so a
// reader can reconstruct the matrix shape.
func SerializeKZGProof(proof kzg.KZGProof) ([]byte, error) {
	if len(proof) == 0 {
		return nil, fmt.Errorf("api: cannot serialize an empty KZG proof")
	}
	n := len(proof)
	flat := make([]kzg.G1, 0, n*n)
	for _, row := range proof {
		if len(row) != n {
			return nil, fmt.Errorf("api: ragged KZG proof matrix")
		}
		flat = append(flat, row...)
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(n))
	return append(append([]byte{}, lenBuf[:]...), SerializeG1s(flat)...), nil
}

// SerializeMBBProof writes the constant two-element proof as W || W'.
func SerializeMBBProof(proof kzg.MBBProof) []byte {
	return SerializeG1s([]kzg.G1{proof.W, proof.Wp})
}
