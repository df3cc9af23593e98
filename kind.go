// kind.go — classification of chain nodes.
//
// Intent:
//   - Distinguish the two sentinels from ordinary nodes without relying on
//     pointer identity.
//   - Keep the set closed: errchain has no user-defined error codes.
package errchain

// Kind classifies an *Error node.
type Kind uint8

const (
	// KindDetailed is an ordinary node built by a constructor or a wrap.
	KindDetailed Kind = iota
	// KindOutOfMemory marks the OutOfMemory sentinel.
	KindOutOfMemory
	// KindEmpty marks the Empty sentinel.
	KindEmpty
)

// allKinds is the ordered set of kinds. Unexported to avoid exposing mutable
// slice identity to callers.
var allKinds = []Kind{
	KindDetailed,
	KindOutOfMemory,
	KindEmpty,
}

var kindNames = map[Kind]string{
	KindDetailed:    "detailed",
	KindOutOfMemory: "out_of_memory",
	KindEmpty:       "empty",
}

// Kinds returns a defensive copy of all kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// String returns the snake_case name of the kind, or "unknown".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsSentinel reports whether k is one of the sentinel kinds.
func (k Kind) IsSentinel() bool {
	return k == KindOutOfMemory || k == KindEmpty
}
