package utils

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const maxRequestIDLength = 64

var (
	NanoidSize     = 21
	nanoidAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoID returns a random id suitable for tagging requests in logs.
func NanoID() string {
	return NanoIDSize(NanoidSize)
}

func NanoIDSize(size int) string {
	if size <= 0 {
		size = NanoidSize
	}

	return gonanoid.MustGenerate(nanoidAlphabet, size)
}

// IsRequestID reports whether id may be carried through as a request id: up
// to 64 characters of the nanoid alphabet plus '-' and '_'.
func IsRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	return strings.Trim(id, nanoidAlphabet+"-_") == ""
}
