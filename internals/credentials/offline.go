package credentials

import (
	"crypto/md5"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/google/uuid"
	"github.com/minepkg/launchkit/internals/launch"
)

// OfflineUUID returns the uuid servers in offline mode assign to name:
// a version 3 uuid of "OfflinePlayer:<name>"
func OfflineUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	// FromBytes only fails for input that is not 16 bytes long
	id, _ := uuid.FromBytes(sum[:])
	return id
}

// Offline returns a credential for offline play. The game accepts it, online
// servers do not.
func Offline(name string) *launch.Credential {
	id := strings.ReplaceAll(OfflineUUID(name).String(), "-", "")
	return &launch.Credential{
		AccessToken:    id,
		ClientToken:    uniuri.NewLen(32),
		UUID:           id,
		Name:           name,
		UserProperties: "{}",
	}
}
