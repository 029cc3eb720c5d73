package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/argon2"
)

// Upper bounds accepted when decoding a PHC string.
const (
	maxMemory      = 1 << 22
	maxIterations  = 16
	maxParallelism = 64
	maxKeyLength   = 1024
)

var (
	ErrInvalidHashFormat   = errors.New("invalid encoded hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// HashParams configures the Argon2id hashing parameters.
type HashParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHashParams returns recommended Argon2id parameters for password hashing.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// HashPassword hashes a password using Argon2id with default parameters.
// Returns the hash encoded in PHC string format.
func HashPassword(password string) string {
	params := DefaultHashParams()

	salt := make([]byte, params.SaltLength)
	_, _ = rand.Read(salt)

	return encodeHash(params, salt, derive(password, salt, params))
}

// VerifyPassword checks whether a password matches the given Argon2id encoded hash.
func VerifyPassword(password, encodedHash string) (bool, error) {
	params, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := derive(password, salt, params)
	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

func derive(password string, salt []byte, p HashParams) []byte {
	return argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// encodeHash renders $argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-hash>.
func encodeHash(p HashParams, salt, hash []byte) string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.Memory,
		p.Iterations,
		p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

// decodeHash parses a PHC-formatted Argon2id hash string.
func decodeHash(encodedHash string) (HashParams, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}
	if version != argon2.Version {
		return HashParams{}, nil, nil, ErrIncompatibleVersion
	}

	var params HashParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return HashParams{}, nil, nil, errors.Mark(errors.Wrap(err, "decoding salt"), ErrInvalidHashFormat)
	}
	params.SaltLength = uint32(len(salt))

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return HashParams{}, nil, nil, errors.Mark(errors.Wrap(err, "decoding hash"), ErrInvalidHashFormat)
	}
	params.KeyLength = uint32(len(hash))

	// argon2 panics on zero parallelism; an empty hash would match anything.
	if params.Parallelism == 0 || params.Iterations == 0 || len(salt) == 0 || len(hash) == 0 {
		return HashParams{}, nil, nil, ErrInvalidHashFormat
	}
	if params.Memory > maxMemory || params.Iterations > maxIterations ||
		params.Parallelism > maxParallelism || params.KeyLength > maxKeyLength {
		return HashParams{}, nil, nil, errors.Mark(
			errors.Newf("argon2 parameters exceed limits (m<=%d, t<=%d, p<=%d)", maxMemory, maxIterations, maxParallelism),
			ErrInvalidHashFormat)
	}

	return params, salt, hash, nil
}
