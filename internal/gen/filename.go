package gen

import "strings"

// Copied from go/build's syslist: file name suffixes the go command treats as
// build constraints.
var knownOS = map[string]bool{
	"aix": true, "android": true, "darwin": true, "dragonfly": true,
	"freebsd": true, "hurd": true, "illumos": true, "ios": true,
	"js": true, "linux": true, "nacl": true, "netbsd": true,
	"openbsd": true, "plan9": true, "solaris": true, "wasip1": true,
	"windows": true, "zos": true,
}

var knownArch = map[string]bool{
	"386": true, "amd64": true, "amd64p32": true, "arm": true,
	"armbe": true, "arm64": true, "arm64be": true, "loong64": true,
	"mips": true, "mipsle": true, "mips64": true, "mips64le": true,
	"mips64p32": true, "mips64p32le": true, "ppc": true, "ppc64": true,
	"ppc64le": true, "riscv": true, "riscv64": true, "s390": true,
	"s390x": true, "sparc": true, "sparc64": true, "wasm": true,
}

// splitConstraintSuffix splits stem into a name and the trailing
// _GOOS, _GOARCH, _GOOS_GOARCH and _test parts that the go command reads from
// file names. The part before the first underscore is never a suffix.
func splitConstraintSuffix(stem string) (name, suffix string) {
	first := strings.Index(stem, "_")
	if first < 0 {
		return stem, ""
	}

	parts := strings.Split(stem[first+1:], "_")
	n := len(parts)

	keep := n
	if n > 0 && parts[n-1] == "test" {
		keep--
	}

	switch {
	case keep >= 2 && knownOS[parts[keep-2]] && knownArch[parts[keep-1]]:
		keep -= 2
	case keep >= 1 && (knownOS[parts[keep-1]] || knownArch[parts[keep-1]]):
		keep--
	}

	if keep == n {
		return stem, ""
	}

	cut := first
	for _, p := range parts[:keep] {
		cut += 1 + len(p)
	}

	return stem[:cut], stem[cut:]
}
