// Package cryptox turns passwords into credential digests and checks
// passwords against them.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Hasher names accepted by NewHasher.
const (
	HasherArgon2id = "argon2id"
	HasherBcrypt   = "bcrypt"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = oops.Code("CRYPTO_EMPTY_PASSWORD").Errorf("password cannot be empty")

// Hasher produces salted one-way digests of passwords.
type Hasher interface {
	// Hash returns a self-describing digest of password with a fresh salt.
	Hash(password []byte) (string, error)

	// Verify reports whether password matches digest. A malformed digest
	// yields an error; a plain mismatch yields (false, nil).
	Verify(password []byte, digest string) (bool, error)
}

// NewHasher returns the hasher registered under name.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", HasherArgon2id:
		return NewArgon2idHasher(DefaultArgon2Params), nil
	case HasherBcrypt:
		return NewBcryptHasher(bcrypt.DefaultCost), nil
	default:
		return nil, oops.Code("CRYPTO_UNKNOWN_HASHER").With("hasher", name).Errorf("unknown hasher %q", name)
	}
}

// Argon2Params tunes argon2id. Memory is in KiB.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	SaltLen int
	KeyLen  uint32
}

// DefaultArgon2Params are the OWASP-recommended argon2id settings.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	SaltLen: 16,
	KeyLen:  32,
}

// Argon2idHasher stores digests in PHC string format:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
type Argon2idHasher struct {
	params Argon2Params
}

func NewArgon2idHasher(p Argon2Params) *Argon2idHasher {
	return &Argon2idHasher{params: p}
}

func (h *Argon2idHasher) Hash(password []byte) (string, error) {
	if len(password) == 0 {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", oops.Code("CRYPTO_SALT_FAILED").Wrap(err)
	}

	key := argon2.IDKey(password, salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *Argon2idHasher) Verify(password []byte, digest string) (bool, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Errorf("invalid digest format")
	}
	if parts[1] != HasherArgon2id {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Errorf("unsupported digest algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Wrap(err)
	}
	if version != argon2.Version {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Errorf("unsupported argon2 version %d", version)
	}

	var memory, iterations, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Wrap(err)
	}
	if threads == 0 || threads > 255 {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Errorf("threads value %d out of range", threads)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Wrap(err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Wrap(err)
	}
	if len(expected) == 0 || len(expected) > 1<<10 {
		return false, oops.Code("CRYPTO_INVALID_DIGEST").Errorf("invalid key length: %d", len(expected))
	}

	computed := argon2.IDKey(password, salt, iterations, memory, uint8(threads), uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

// BcryptHasher stores standard $2a$ bcrypt digests.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password []byte) (string, error) {
	if len(password) == 0 {
		return "", ErrEmptyPassword
	}
	digest, err := bcrypt.GenerateFromPassword(password, h.cost)
	if err != nil {
		return "", oops.Code("CRYPTO_HASH_FAILED").With("hasher", HasherBcrypt).Wrap(err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password []byte, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, oops.Code("CRYPTO_INVALID_DIGEST").With("hasher", HasherBcrypt).Wrap(err)
	}
}
