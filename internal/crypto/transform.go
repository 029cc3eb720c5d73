package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"sort"
	"strings"
)

// DefaultSaltBytes yields a 16 character hex salt.
const DefaultSaltBytes = 8

// Transform derives a new string from a password.
type Transform func(string) string

// Hash returns the hex-encoded SHA-256 digest of password.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Salt prefixes password with a fresh random hex token: "<token>:<password>".
func Salt(password string) string {
	return SaltWith(DefaultSaltBytes)(password)
}

// SaltWith returns a salt transform drawing n random bytes per call.
func SaltWith(n int) Transform {
	if n < 1 {
		n = DefaultSaltBytes
	}
	return func(password string) string {
		token := make([]byte, n)
		// crypto/rand.Read never fails on supported platforms.
		_, _ = rand.Read(token)
		return hex.EncodeToString(token) + ":" + password
	}
}

// Reverse returns password with its characters in reverse order.
func Reverse(password string) string {
	runes := []rune(password)
	slices.Reverse(runes)
	return string(runes)
}

// Upper returns password upper-cased.
func Upper(password string) string {
	return strings.ToUpper(password)
}

// Argon2 returns an Argon2id PHC string for password using a fresh salt.
func Argon2(password string) string {
	return HashPassword(password)
}

// Transforms maps transform names, as accepted on the command line, to their functions.
var Transforms = map[string]Transform{
	"hash":    Hash,
	"salt":    Salt,
	"reverse": Reverse,
	"upper":   Upper,
	"argon2":  Argon2,
}

// TransformNames returns the registered transform names, sorted.
func TransformNames() []string {
	names := make([]string, 0, len(Transforms))
	for name := range Transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTransform returns the transform registered under name.
func LookupTransform(name string) (Transform, bool) {
	t, ok := Transforms[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
