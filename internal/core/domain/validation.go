package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	addressPrefix    = "0x"
	addressLength    = 66
	MaxMessageLength = 100
)

var (
	ErrInvalidAddress = errors.New("address must be 0x followed by 64 hex characters")
	ErrInvalidMessage = errors.New("message must be between 1 and 100 characters")
)

// ValidateAddress accepts exactly "0x" plus 64 hex digits.
func ValidateAddress(addr string) error {
	if len(addr) != addressLength || !strings.HasPrefix(addr, addressPrefix) {
		return ErrInvalidAddress
	}
	for _, c := range addr[len(addressPrefix):] {
		if !isHex(c) {
			return ErrInvalidAddress
		}
	}
	return nil
}

// ValidateMessage checks board content length in characters.
func ValidateMessage(content string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(content))
	if n == 0 || n > MaxMessageLength {
		return ErrInvalidMessage
	}
	return nil
}

func isHex(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
