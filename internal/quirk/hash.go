package quirk

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainGrid prefixes grid digests. The version suffix leaves room for a
// future change of encoding.
const DomainGrid = "quirkurl/grid/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Digest returns the content identity of a grid: the domain-separated
// SHA-256 of its compact JSON. Equal grids always have equal digests.
func Digest(g *Grid) (string, error) {
	data, err := Encode(g)
	if err != nil {
		return "", fmt.Errorf("Digest: %w", err)
	}
	return hashWithDomain(DomainGrid, data), nil
}
