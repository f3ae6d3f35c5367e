package lib

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("invalid hash format")
	ErrIncompatibleVersion = errors.New("incompatible version of argon2")
)

// Argon2HashParts are the decoded components of a PHC-format argon2id hash:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
type Argon2HashParts struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	Salt    []byte
	Hash    []byte
}

// DecodeArgon2Hash splits a stored password hash into its parts. Anything that
// is not argon2id at the current version is rejected.
func DecodeArgon2Hash(encodedHash string) (*Argon2HashParts, error) {
	fields := strings.Split(encodedHash, "$")
	if len(fields) != 6 || fields[1] != "argon2id" {
		return nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(fields[2], "v=%d", &version); err != nil {
		return nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return nil, ErrIncompatibleVersion
	}

	parts := &Argon2HashParts{}
	if _, err := fmt.Sscanf(fields[3], "m=%d,t=%d,p=%d", &parts.Memory, &parts.Time, &parts.Threads); err != nil {
		return nil, ErrInvalidHash
	}

	var err error
	if parts.Salt, err = base64.RawStdEncoding.DecodeString(fields[4]); err != nil {
		return nil, ErrInvalidHash
	}
	if parts.Hash, err = base64.RawStdEncoding.DecodeString(fields[5]); err != nil {
		return nil, ErrInvalidHash
	}
	parts.KeyLen = uint32(len(parts.Hash))

	return parts, nil
}

// SecureCompare compares two hashes in constant time.
func SecureCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
