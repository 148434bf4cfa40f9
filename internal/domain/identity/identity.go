// Package identity maps raw stat rows to canonical player keys. Resolution
// is pure and deterministic so a player's history line stays stable across
// season uploads.
package identity

import "github.com/okian/gridiron/internal/domain/model"

// Resolve returns the canonical key for a (position, display name) pair.
// Names are preserved verbatim, including empty or garbage input: the key
// is collision-free only under the source league's assumption that
// (position, name) is unique, and normalizing here would silently change
// which history line a re-upload lands on.
func Resolve(position, rawName string) model.PlayerKey {
	return model.PlayerKey(position + ":" + rawName)
}
