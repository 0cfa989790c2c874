package block

import (
	"crypto/aes"
	"fmt"
	"sort"
	"strings"

	"blockmodes/internal/errors"

	"github.com/Picocrypt/serpent"
)

// Registered transform names.
const (
	NameAES     = "aes"
	NameSerpent = "serpent"
)

var (
	// AES is AES-128.
	AES = FromCipher(NameAES, aes.NewCipher)

	// Serpent is Serpent with a 128-bit key.
	Serpent = FromCipher(NameSerpent, serpent.NewCipher)
)

var registry = map[string]Transform{
	NameAES:     AES,
	NameSerpent: Serpent,
}

// Default returns the transform used when none is specified.
func Default() Transform {
	return AES
}

// Lookup returns the transform registered under name (case-insensitive).
func Lookup(name string) (Transform, error) {
	t, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", errors.ErrUnknownCipher, name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names lists the registered transform names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
