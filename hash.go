package verdict

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Redacted replaces secrets in failure records.
const Redacted = "***"

// errMalformedDigest is returned by Verify for digests it cannot parse.
var errMalformedDigest = errors.New("malformed digest")

// Hasher produces and verifies one-way digests.
type Hasher interface {
	// Hash returns the digest of plaintext. For argon2 and bcrypt the result
	// embeds salt and parameters; for sha256 and sha512 it is hex-encoded.
	// Digests produced here are what expect.Digest verifies against.
	Hash(plaintext []byte) (string, error)

	// Verify reports whether plaintext produces the encoded digest.
	// It returns an error only if encoded is malformed.
	Verify(plaintext []byte, encoded string) (bool, error)

	// Parse checks that encoded is well formed without hashing anything.
	Parse(encoded string) error
}

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output key length
	SaltLen uint32 // Salt length
}

// MaxArgon2Memory is the largest memory parameter, in KiB, an encoded digest
// may carry. Each verification allocates that much.
const MaxArgon2Memory = 1024 * 1024 // 1 GiB

// DefaultArgon2Params returns recommended Argon2id parameters.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// argon2Hasher implements Argon2id.
type argon2Hasher struct {
	params Argon2Params
}

// Argon2 returns an Argon2id hasher with default parameters.
// Verification always uses the parameters embedded in the digest.
func Argon2() Hasher {
	return Argon2WithParams(DefaultArgon2Params())
}

// Argon2WithParams returns an Argon2id hasher with custom parameters.
func Argon2WithParams(params Argon2Params) Hasher {
	return &argon2Hasher{params: params}
}

func (h *argon2Hasher) Hash(plaintext []byte) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey(plaintext, salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *argon2Hasher) Verify(plaintext []byte, encoded string) (bool, error) {
	params, salt, key, err := decodeArgon2(encoded)
	if err != nil {
		return false, err
	}
	got := argon2.IDKey(plaintext, salt, params.Time, params.Memory, params.Threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(got, key) == 1, nil
}

func (h *argon2Hasher) Parse(encoded string) error {
	_, _, _, err := decodeArgon2(encoded)
	return err
}

func decodeArgon2(encoded string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("%w: not an argon2id digest", errMalformedDigest)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, fmt.Errorf("%w: unsupported argon2 version", errMalformedDigest)
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, fmt.Errorf("%w: argon2 parameters: %v", errMalformedDigest, err)
	}

	switch {
	case params.Time < 1:
		return params, nil, nil, fmt.Errorf("%w: argon2 time must be at least 1", errMalformedDigest)
	case params.Threads < 1:
		return params, nil, nil, fmt.Errorf("%w: argon2 parallelism must be at least 1", errMalformedDigest)
	case params.Memory > MaxArgon2Memory:
		return params, nil, nil, fmt.Errorf("%w: argon2 memory exceeds %d KiB", errMalformedDigest, MaxArgon2Memory)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return params, nil, nil, fmt.Errorf("%w: argon2 salt", errMalformedDigest)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, fmt.Errorf("%w: argon2 key", errMalformedDigest)
	}

	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(key))
	return params, salt, key, nil
}

// BcryptCost represents the bcrypt cost factor.
type BcryptCost int

// Bcrypt cost constants.
const (
	BcryptMinCost     BcryptCost = BcryptCost(bcrypt.MinCost)
	BcryptDefaultCost BcryptCost = BcryptCost(bcrypt.DefaultCost)
	BcryptMaxCost     BcryptCost = BcryptCost(bcrypt.MaxCost)
)

// bcryptHasher implements bcrypt.
type bcryptHasher struct {
	cost int
}

// Bcrypt returns a bcrypt hasher with default cost.
func Bcrypt() Hasher {
	return BcryptWithCost(BcryptDefaultCost)
}

// BcryptWithCost returns a bcrypt hasher with a specific cost factor.
func BcryptWithCost(cost BcryptCost) Hasher {
	return &bcryptHasher{cost: int(cost)}
}

func (h *bcryptHasher) Hash(plaintext []byte) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(plaintext, h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash failed: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Verify(plaintext []byte, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), plaintext)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", errMalformedDigest, err)
	}
}

func (h *bcryptHasher) Parse(encoded string) error {
	if _, err := bcrypt.Cost([]byte(encoded)); err != nil {
		return fmt.Errorf("%w: %v", errMalformedDigest, err)
	}
	return nil
}

// shaHasher implements hex-encoded SHA-2 digests.
type shaHasher struct {
	size int
	sum  func([]byte) []byte
}

// SHA256Hasher returns a SHA-256 hasher.
func SHA256Hasher() Hasher {
	return &shaHasher{size: sha256.Size, sum: func(b []byte) []byte {
		s := sha256.Sum256(b)
		return s[:]
	}}
}

// SHA512Hasher returns a SHA-512 hasher.
func SHA512Hasher() Hasher {
	return &shaHasher{size: sha512.Size, sum: func(b []byte) []byte {
		s := sha512.Sum512(b)
		return s[:]
	}}
}

func (h *shaHasher) Hash(plaintext []byte) (string, error) {
	return hex.EncodeToString(h.sum(plaintext)), nil
}

func (h *shaHasher) Verify(plaintext []byte, encoded string) (bool, error) {
	want, err := h.decode(encoded)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(h.sum(plaintext), want) == 1, nil
}

func (h *shaHasher) Parse(encoded string) error {
	_, err := h.decode(encoded)
	return err
}

func (h *shaHasher) decode(encoded string) ([]byte, error) {
	want, err := hex.DecodeString(encoded)
	if err != nil || len(want) != h.size {
		return nil, fmt.Errorf("%w: expected %d hex-encoded bytes", errMalformedDigest, h.size)
	}
	return want, nil
}

// HasherFor returns the builtin hasher for algo.
func HasherFor(algo HashAlgo) (Hasher, bool) {
	switch algo {
	case HashArgon2:
		return Argon2(), true
	case HashBcrypt:
		return Bcrypt(), true
	case HashSHA256:
		return SHA256Hasher(), true
	case HashSHA512:
		return SHA512Hasher(), true
	}
	return nil, false
}
