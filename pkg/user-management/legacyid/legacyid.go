// Package legacyid derives the owner IDs the historical profile database
// stamped onto content. Retained only so federated sign-ins and account
// conversion can find content created before local accounts existed; new
// accounts get random UUIDs instead.
package legacyid

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// These parameters must reproduce the original Rfc2898DeriveBytes output
// bit for bit. Existing profiles carry IDs computed with exactly this salt,
// iteration count, key length and hash; changing any of them orphans that
// content. Never modify without a full migration pass over stored profiles.
const (
	saltB64    = "AWBH+yXC3ba1vxMj3MrnuXKHikL2RDSX"
	iterations = 100000
	keyLen     = 24
)

var salt []byte

func init() {
	var err error
	salt, err = base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		panic("legacyid: invalid salt: " + err.Error())
	}
}

// DeriveOwnerID maps an email address to its legacy owner ID: PBKDF2-HMAC-SHA1,
// 100000 iterations, 24 bytes, rendered as uppercase hex (48 characters).
// The email is used exactly as given; callers normalize beforehand.
func DeriveOwnerID(email string) string {
	derived := pbkdf2.Key([]byte(email), salt, iterations, keyLen, sha1.New)
	return strings.ToUpper(hex.EncodeToString(derived))
}
