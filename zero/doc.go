// Package zero implements the binary surface.  The layout is a frozen
// external contract: a four-byte header (magic "ZD", version, flags)
// followed by a varint-encoded body, optionally s2-compressed when the
// compression flag bit is set.  Decode accepts exactly what Encode
// produces; the layout never changes within a version.
package zero

// Header constants.
const (
	magic0  = 0x5A // 'Z'
	magic1  = 0x44 // 'D'
	version = 0x01

	// flagCompressed marks an s2-compressed body.
	flagCompressed = 1 << 0

	headerSize = 4
)
