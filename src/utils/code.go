package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// codeAlphabet excludes nothing: codes are compared case-folded, so the
// 36-character uppercase alphanumeric space gives 36^6 ≈ 2.2e9 codes.
// Uniqueness is NOT guaranteed here; the unique index on
// activities.uniqueCode plus caller-side retry handles collisions.
const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength   = 6
)

// GenerateJoinCode returns a fresh 6-character uppercase alphanumeric code.
func GenerateJoinCode() string {
	var b strings.Builder
	b.Grow(CodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic("join code generation: " + err.Error())
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String()
}

// NormalizeJoinCode folds user input into the canonical code form. Applied
// defensively on every lookup, not just trusted from the caller.
func NormalizeJoinCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
