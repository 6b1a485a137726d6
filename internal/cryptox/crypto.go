// Package cryptox hashes and verifies user passwords.
//
// Hashes are argon2id digests over a random per-user salt, stored in the
// self-describing form
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with salt and key in unpadded standard base64. Verification reads the cost
// parameters back from the stored hash, so changing Params only affects new
// hashes.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/hitec/nhplus/internal/common"
)

var ErrorMalformedHash = errors.New("malformed password hash")

// MaxMemory bounds the memory cost accepted from a stored hash, in KiB.
const MaxMemory = 1024 * 1024

// PasswordHasher turns plain passwords into stored hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

// Params are the argon2id cost parameters.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultParams match the interactive recommendation of RFC 9106.
var DefaultParams = Params{Time: 1, Memory: 64 * 1024, Threads: 4, SaltLen: 16, KeyLen: 32}

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password, salt []byte, p Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// Argon2Hasher implements PasswordHasher with argon2id.
type Argon2Hasher struct {
	params Params
}

func NewArgon2Hasher(p Params) *Argon2Hasher {
	return &Argon2Hasher{params: p}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("empty password: %w", common.ErrorValidation)
	}

	salt := common.GenerateRandByteArray(int(h.params.SaltLen))
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	key := DeriveKey(pw, salt, h.params)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Verify reports whether password matches encoded. A mismatch is not an
// error; only an unparsable hash is.
func (h *Argon2Hasher) Verify(password, encoded string) (bool, error) {
	p, salt, want, err := decode(encoded)
	if err != nil {
		return false, err
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	got := DeriveKey(pw, salt, p)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func decode(encoded string) (p Params, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, ErrorMalformedHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %v", ErrorMalformedHash, err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrorMalformedHash, version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %v", ErrorMalformedHash, err)
	}

	if p.Time < 1 || p.Threads < 1 {
		return p, nil, nil, fmt.Errorf("%w: time and threads must be positive", ErrorMalformedHash)
	}
	if p.Memory < 8*uint32(p.Threads) || p.Memory > MaxMemory {
		return p, nil, nil, fmt.Errorf("%w: memory %d KiB out of range", ErrorMalformedHash, p.Memory)
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %v", ErrorMalformedHash, err)
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return p, nil, nil, fmt.Errorf("%w: %v", ErrorMalformedHash, err)
	}
	if len(salt) == 0 || len(key) == 0 {
		return p, nil, nil, ErrorMalformedHash
	}

	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))
	return p, salt, key, nil
}
