package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const CORTokenLength = 48

var ReferenceNumberPattern = regexp.MustCompile(`^AES-\d{4}-[0-9A-F]{6}$`)

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// NewReferenceNumber returns AES-<year>-<6 upper hex>.
func NewReferenceNumber(now time.Time) (string, error) {
	suffix, err := randomHex(3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("AES-%d-%s", now.Year(), suffix), nil
}

// NewLegacyReferenceNumber tags imported submissions with AES-LEG-<6 upper hex>.
func NewLegacyReferenceNumber() (string, error) {
	suffix, err := randomHex(3)
	if err != nil {
		return "", err
	}
	return "AES-LEG-" + suffix, nil
}

// NewCORToken returns a random alphanumeric bearer token for institutions.
func NewCORToken() (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	var sb strings.Builder
	sb.Grow(CORTokenLength)
	for i := 0; i < CORTokenLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(tokenAlphabet[n.Int64()])
	}
	return sb.String(), nil
}
