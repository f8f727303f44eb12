// ABOUTME: Loads JSON5 golden vectors for the universal codes.
// ABOUTME: Each vector names a code, a value, and the expected bit pattern, hand-derived from the codes' defining formulas.
package codes

import (
	"fmt"
	"os"

	"github.com/aeolun/json5"
)

// GoldenCase is one code/value/expected-bit-pattern vector.
type GoldenCase struct {
	Code  string `json:"code"` // "unary", "gamma", or "delta"
	Value uint64 `json:"value"`
	Bits  string `json:"bits"` // MSB-first, e.g. "00100"
}

// GoldenSuite is a named collection of GoldenCase vectors.
type GoldenSuite struct {
	Description string       `json:"description"`
	Cases       []GoldenCase `json:"cases"`
}

// LoadGoldenSuite reads and parses a JSON5 golden-vector file.
func LoadGoldenSuite(path string) (*GoldenSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden file %s: %w", path, err)
	}
	var suite GoldenSuite
	if err := json5.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse golden file %s: %w", path, err)
	}
	return &suite, nil
}
