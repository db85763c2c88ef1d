// Package secure encrypts SINs at rest with AES-256-CBC. Ciphertext is
// stored as hex(iv):hex(ciphertext) with PKCS#7 padding.
package secure

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const keySize = 32

var ErrMalformedCiphertext = errors.New("malformed ciphertext")

type SINCipher struct {
	key []byte
}

// NewSINCipher uses the first 32 bytes of key. Shorter keys are rejected.
func NewSINCipher(key string) (*SINCipher, error) {
	if len(key) < keySize {
		return nil, fmt.Errorf("encryption key must be at least %d bytes", keySize)
	}
	return &SINCipher{key: []byte(key)[:keySize]}, nil
}

func (c *SINCipher) Encrypt(plain string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}
	padded := pad([]byte(plain), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(out), nil
}

func (c *SINCipher) Decrypt(stored string) (string, error) {
	ivHex, dataHex, ok := strings.Cut(stored, ":")
	if !ok {
		return "", ErrMalformedCiphertext
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", ErrMalformedCiphertext
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil || len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", ErrMalformedCiphertext
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
	plain, err := unpad(out, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Mask renders a stored SIN as ***-***-NNN.
func (c *SINCipher) Mask(stored string) string {
	if stored == "" {
		return ""
	}
	sin, err := c.Decrypt(stored)
	if err != nil || len(sin) < 3 {
		return "***-***-***"
	}
	return "***-***-" + sin[len(sin)-3:]
}

func pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, ErrMalformedCiphertext
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size {
		return nil, ErrMalformedCiphertext
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, ErrMalformedCiphertext
		}
	}
	return b[:len(b)-n], nil
}
