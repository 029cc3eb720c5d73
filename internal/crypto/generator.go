package crypto

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	rawSymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// UnsafeSymbols are never emitted: they break quoting in shells and SQL.
	UnsafeSymbols = "\"'\\`~"

	MaxLength = 4096
)

// symbolChars is rawSymbolChars with UnsafeSymbols removed.
var symbolChars = FilterUnsafe(rawSymbolChars)

var (
	// ErrInvalidConfiguration marks every error caused by unusable generator options.
	ErrInvalidConfiguration = errors.New("invalid generator configuration")

	ErrNoCharacterClasses = errors.Mark(
		errors.New("at least one character class must be enabled"), ErrInvalidConfiguration)
	ErrInvalidLength = errors.Mark(
		errors.Newf("password length must be between 1 and %d", MaxLength), ErrInvalidConfiguration)
)

// CharacterClass is a named, read-only set of characters.
type CharacterClass struct {
	Name  string
	Chars string
}

// Classes returns the character classes in seeding order.
func Classes() []CharacterClass {
	return []CharacterClass{
		{Name: "lowercase", Chars: lowercaseChars},
		{Name: "uppercase", Chars: uppercaseChars},
		{Name: "numbers", Chars: numberChars},
		{Name: "symbols", Chars: symbolChars},
	}
}

// FilterUnsafe drops every character listed in UnsafeSymbols.
func FilterUnsafe(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(UnsafeSymbols, r) {
			return -1
		}
		return r
	}, s)
}

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns 12 characters with all classes enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{Length: 12, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}
}

// StrongOptions returns 16 characters with all classes enabled.
func StrongOptions() GeneratorOptions {
	return GeneratorOptions{Length: 16, Lowercase: true, Uppercase: true, Numbers: true, Symbols: true}
}

// SimpleOptions returns 8 characters made of letters and digits.
func SimpleOptions() GeneratorOptions {
	return GeneratorOptions{Length: 8, Lowercase: true, Uppercase: true, Numbers: true}
}

// enabledSets returns the character sets switched on in opts, in class order.
func (o GeneratorOptions) enabledSets() []string {
	var sets []string
	if o.Lowercase {
		sets = append(sets, lowercaseChars)
	}
	if o.Uppercase {
		sets = append(sets, uppercaseChars)
	}
	if o.Numbers {
		sets = append(sets, numberChars)
	}
	if o.Symbols {
		sets = append(sets, symbolChars)
	}
	return sets
}

// EnabledClasses reports how many character classes opts turns on.
func (o GeneratorOptions) EnabledClasses() int {
	return len(o.enabledSets())
}

// Validate reports whether opts can produce a password.
func (o GeneratorOptions) Validate() error {
	if o.Length < 1 || o.Length > MaxLength {
		return ErrInvalidLength
	}
	if len(strings.Join(o.enabledSets(), "")) == 0 {
		return ErrNoCharacterClasses
	}
	return nil
}

// Generate creates a cryptographically secure random password based on the given options.
//
// Every enabled class contributes at least one character when Length allows it.
// When Length is smaller than the number of enabled classes the shuffled seeds are
// truncated, so the result is always exactly Length characters long.
func Generate(opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	var pool string
	var requiredSets []string
	for _, set := range opts.enabledSets() {
		if set == "" {
			continue
		}
		pool += set
		requiredSets = append(requiredSets, set)
	}

	result := make([]byte, 0, max(opts.Length, len(requiredSets)))

	// Guarantee at least one character from each selected class.
	for _, charset := range requiredSets {
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Fill the remaining positions from the full pool.
	for len(result) < opts.Length {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result[:opts.Length]), nil
}

// Generator keeps a configuration so it can be reused for many passwords.
type Generator struct {
	opts GeneratorOptions
}

// NewGenerator validates opts and returns a Generator bound to them.
func NewGenerator(opts GeneratorOptions) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Generator{opts: opts}, nil
}

// Options returns a copy of the generator's configuration.
func (g *Generator) Options() GeneratorOptions { return g.opts }

// Generate returns a fresh password of the configured length.
func (g *Generator) Generate() (string, error) {
	return Generate(g.opts)
}

// GenerateLength overrides the configured length for a single password.
// A length of zero or less falls back to the configured one.
func (g *Generator) GenerateLength(length int) (string, error) {
	opts := g.opts
	if length > 0 {
		opts.Length = length
	}
	return Generate(opts)
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := randIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "reading secure random source")
	}
	return int(v.Int64()), nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
