// Package util holds small content-hashing helpers shared by the CLI.
package util

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/google/uuid"
)

// Md5ThenHex is a quick hasher
func Md5ThenHex(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	return hex.EncodeToString(hasher.Sum(nil))
}

// ContentID derives a stable UUID from raw bytes, used to name decoded
// output when the caller gives no path. Identical input always maps to
// the same ID.
func ContentID(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	hash := hasher.Sum(nil)
	id, err := uuid.FromBytes(hash[:16])
	if err != nil {
		return ""
	}
	return id.String()
}
