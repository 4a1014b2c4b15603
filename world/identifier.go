// Package world holds the client's mirror of server-sent world state: chunk
// storage, paletted block/biome containers, and the position types used
// throughout the core.
package world

import (
	"fmt"
	"strings"
)

// Identifier is a namespaced resource name, e.g. "minecraft:stone". A bare
// string with no namespace is assumed to be "minecraft".
type Identifier struct {
	Namespace string
	Path      string
}

// ParseIdentifier splits "namespace:path", defaulting the namespace to
// "minecraft" when absent.
func ParseIdentifier(s string) Identifier {
	if ns, path, ok := strings.Cut(s, ":"); ok {
		return Identifier{Namespace: ns, Path: path}
	}
	return Identifier{Namespace: "minecraft", Path: s}
}

func (id Identifier) String() string {
	return fmt.Sprintf("%s:%s", id.Namespace, id.Path)
}
