// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Summary is a generated paper summary split into canonical sections.
// Any section may be empty; renderers must degrade gracefully. Labels the
// parser recognized but could not map to a canonical section land in
// Extra; when no section markers were found at all the whole text lands
// in Overview.
type Summary struct {
	Problem    string `json:"problem,omitempty" yaml:"problem,omitempty"`
	Innovation string `json:"innovation,omitempty" yaml:"innovation,omitempty"`
	Impact     string `json:"impact,omitempty" yaml:"impact,omitempty"`
	Analogy    string `json:"analogy,omitempty" yaml:"analogy,omitempty"`

	// Overview is the catch-all section used when the generated text had
	// no recognizable headings.
	Overview string `json:"overview,omitempty" yaml:"overview,omitempty"`

	// Extra holds recognized headings outside the canonical set, keyed by
	// their lowercased label.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`

	// Provider names the generator that produced the text.
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
}

// IsEmpty reports whether the summary carries no text at all.
func (s Summary) IsEmpty() bool {
	return s.Problem == "" && s.Innovation == "" && s.Impact == "" &&
		s.Analogy == "" && s.Overview == "" && len(s.Extra) == 0
}
