// Package pix classifies and validates Pix keys (the Brazilian instant
// payment identifiers) into the five registered key shapes.
package pix

import (
	"regexp"
	"strings"
)

// KeyType is one of the five Pix key shapes.

type KeyType string

const (
	KeyTypeEVP      KeyType = "EVP"
	KeyTypeCPF      KeyType = "CPF"
	KeyTypeCNPJ     KeyType = "CNPJ"
	KeyTypeEmail    KeyType = "EMAIL"
	KeyTypeTelefone KeyType = "TELEFONE"
)

var (
	evpRe      = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	cpfRe      = regexp.MustCompile(`^\d{11}$`)
	cnpjRe     = regexp.MustCompile(`^\d{14}$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telefoneRe = regexp.MustCompile(`^\d{10,11}$`)
)

// Detect classifies a key by shape, trying EVP, CPF, CNPJ, EMAIL and TELEFONE
// in that fixed order. The order matters: a bare 11-digit string satisfies
// both the CPF and phone shapes and is always classified as CPF. Returns
// false when no shape matches.
func Detect(key string) (KeyType, bool) {
	switch {
	case evpRe.MatchString(strings.ToLower(key)):
		return KeyTypeEVP, true
	case cpfRe.MatchString(key):
		return KeyTypeCPF, true
	case cnpjRe.MatchString(key):
		return KeyTypeCNPJ, true
	case emailRe.MatchString(key):
		return KeyTypeEmail, true
	case telefoneRe.MatchString(key):
		return KeyTypeTelefone, true
	}
	return "", false
}

// Validate re-checks the shape for a kind claimed by the caller.
func Validate(key string, kind KeyType) bool {
	switch kind {
	case KeyTypeEVP:
		return evpRe.MatchString(strings.ToLower(key))
	case KeyTypeCPF:
		return cpfRe.MatchString(key)
	case KeyTypeCNPJ:
		return cnpjRe.MatchString(key)
	case KeyTypeEmail:
		return emailRe.MatchString(key)
	case KeyTypeTelefone:
		return telefoneRe.MatchString(key)
	}
	return false
}
