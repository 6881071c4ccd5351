package api

import (
	"encoding/hex"

	"gopkg.in/yaml.v2"
)

// TestVector is a single deterministic fixture: the inputs needed to
// reproduce a commit/evaluate/open run (seed, batch size, degree, scheme
// name) plus the expected output bytes, so a correctness suite can assert
// against a golden value instead of only a round-trip.
type TestVector struct {
	Scheme           string   `yaml:"scheme"`
	Seed             uint64   `yaml:"seed"`
	N                int      `yaml:"n"`
	D                int      `yaml:"d"`
	CommitmentsHex   []string `yaml:"commitments_hex"`
	ExpectedProofHex string   `yaml:"expected_proof_hex"`
}

// EncodeProofHex is a convenience wrapper so fixture authors can store
// serialized proof bytes as a single hex string in YAML rather than a byte
// array, the way Ethereum consensus-spec-test fixtures store compressed
// point hex.
func EncodeProofHex(proof []byte) string {
	return hex.EncodeToString(proof)
}

// DecodeProofHex is the inverse of EncodeProofHex.
func DecodeProofHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// MarshalTestVectors serializes a set of fixtures to YAML.
func MarshalTestVectors(vectors []TestVector) ([]byte, error) {
	return yaml.Marshal(vectors)
}

// UnmarshalTestVectors parses a set of fixtures from YAML.
func UnmarshalTestVectors(data []byte) ([]TestVector, error) {
	var vectors []TestVector
	if err := yaml.Unmarshal(data, &vectors); err != nil {
		return nil, err
	}
	return vectors, nil
}
