package source

// ExtractBlock returns the balanced-brace block starting at start,
// where text[start] is expected to be an opening brace, along with
// the index just past the matching closing brace. The scan keeps a
// depth counter and stops when depth returns to zero. If the input
// is truncated or unbalanced and depth never returns to zero, the
// remainder of the buffer is returned; callers treat that block as
// best-effort rather than an error.
func ExtractBlock(text string, start int) (string, int) {
	if start < 0 || start >= len(text) {
		return "", start
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], i + 1
			}
		}
	}
	return text[start:], len(text)
}

// Index maps method names to their extracted bodies for one buffer.
// The maps are built once and shared read-only by every analyzer.
//
// Known limitation: overloaded methods share a name, so later
// matches overwrite earlier ones (last write wins). Disambiguating
// by signature would change downstream metric calibration.
type Index struct {
	// Methods maps every located method name to its body, the
	// balanced-brace span including both braces.
	Methods map[string]string

	// TestMethods is the subset of Methods whose signature carries
	// the @Test marker.
	TestMethods map[string]string
}

// NewIndex scans the buffer for method signatures and extracts each
// body via ExtractBlock. Signatures inside string literals or
// comments are not excluded; that is a documented false-positive
// source of the textual heuristic.
func NewIndex(buf *Buffer) *Index {
	idx := &Index{
		Methods:     make(map[string]string),
		TestMethods: make(map[string]string),
	}

	for _, m := range MethodSignature.FindAllStringSubmatchIndex(buf.Text, -1) {
		name := buf.Text[m[2]:m[3]]
		body, _ := ExtractBlock(buf.Text, m[1]-1)
		idx.Methods[name] = body
	}

	for _, m := range TestMethodSignature.FindAllStringSubmatchIndex(buf.Text, -1) {
		name := buf.Text[m[2]:m[3]]
		body, _ := ExtractBlock(buf.Text, m[1]-1)
		idx.TestMethods[name] = body
	}

	return idx
}
