package crypto

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestHash(t *testing.T) {
	got := Hash("teste123")
	assert.Equal(t, got, Hash("teste123"), "hash must be deterministic")
	assert.NotEqual(t, "teste123", got)
	assert.Regexp(t, hexDigest, got)
	assert.Regexp(t, hexDigest, Hash(strings.Repeat("x", 1000)))

	// Known SHA-256 vector.
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Hash("abc"))
}

func TestSalt(t *testing.T) {
	const password = "meuTeste"

	first := Salt(password)
	second := Salt(password)

	assert.True(t, strings.HasSuffix(first, ":"+password))
	assert.NotEqual(t, first, second, "each call must draw a fresh salt")

	token, rest, ok := strings.Cut(first, ":")
	require.True(t, ok)
	assert.Equal(t, password, rest)
	assert.Regexp(t, `^[0-9a-f]{16}$`, token)
}

func TestSaltWith(t *testing.T) {
	token, _, ok := strings.Cut(SaltWith(4)("pw"), ":")
	require.True(t, ok)
	assert.Len(t, token, 8)

	token, _, _ = strings.Cut(SaltWith(0)("pw"), ":")
	assert.Len(t, token, DefaultSaltBytes*2)
}

func TestSaltKeepsColonsInPassword(t *testing.T) {
	out := Salt("a:b")
	assert.True(t, strings.HasSuffix(out, ":a:b"))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "321cba", Reverse("abc123"))
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "ãé", Reverse("éã"))

	for _, s := range []string{"", "a", "abc123", "P@ss:w0rd!", "ünïcødé"} {
		assert.Equal(t, s, Reverse(Reverse(s)))
	}
}

func TestUpper(t *testing.T) {
	assert.Equal(t, "TESTE123", Upper("teste123"))
}

func TestArgon2Transform(t *testing.T) {
	encoded := Argon2("correct-horse")
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := VerifyPassword("correct-horse", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLookupTransform(t *testing.T) {
	for _, name := range TransformNames() {
		fn, ok := LookupTransform(name)
		require.True(t, ok, name)
		assert.NotNil(t, fn)
	}

	fn, ok := LookupTransform(" Reverse ")
	require.True(t, ok)
	assert.Equal(t, "cba", fn("abc"))

	_, ok = LookupTransform("rot13")
	assert.False(t, ok)
}

func TestTransformNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"argon2", "hash", "reverse", "salt", "upper"}, TransformNames())
}
