package types

// SearchNode is a candidate string reached by zero or more decoder
// applications from the root input (§3). Nodes are immutable once
// enqueued: Path is never mutated in place, only extended by value into
// a new SearchNode for each child.
type SearchNode struct {
	Text     Text
	Path     []CrackResult
	Depth    int
	Priority float64
}

// Child builds the next SearchNode by appending step to n's path. The
// invariant "path's input of position i+1 equals unencrypted_text of
// position i" (§3) is the caller's responsibility: step.Input must equal
// the candidate text extracted from n, and childText must be one of
// step.UnencryptedText.
func (n SearchNode) Child(childText Text, step CrackResult, priority float64) SearchNode {
	path := make([]CrackResult, len(n.Path)+1)
	copy(path, n.Path)
	path[len(path)-1] = step
	return SearchNode{
		Text:     childText,
		Path:     path,
		Depth:    n.Depth + 1,
		Priority: priority,
	}
}

// DecoderNames returns the path's decoder names in order, e.g.
// ["Base64", "Base32"].
func (n SearchNode) DecoderNames() []string {
	names := make([]string, len(n.Path))
	for i, step := range n.Path {
		names[i] = step.Name
	}
	return names
}
