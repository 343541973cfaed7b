package callsite

// Prefix starts every hash-mode identifier. It guarantees a valid leading
// character and keeps generated names away from hand-written ones.
const Prefix = "_EXCLUSIVE_"

// Placeholder is Go's blank identifier. Declarations bound to it never
// collide with each other.
const Placeholder = "_"

const hexDigits = "0123456789ABCDEF"

// Allocate returns the declaration name for an invocation at site.
//
// In ModeHash the canonical bytes of site are hex encoded, upper case,
// most-significant nibble first, after Prefix. In ModePlaceholder the
// blank identifier is returned and no encoding is done.
func Allocate(site Site, mode Mode) string {
	if mode == ModePlaceholder {
		return Placeholder
	}

	return Prefix + encodeHex(site.Bytes())
}

func encodeHex(b []byte) string {
	out := make([]byte, 0, len(b)*2)
	for _, c := range b {
		out = append(out, hexDigits[c>>4], hexDigits[c&0x0f])
	}

	return string(out)
}
