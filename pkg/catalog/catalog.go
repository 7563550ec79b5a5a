package catalog

// Option is one selectable procedure code. The empty value is reserved for
// the placeholder entry a select control shows before the user picks; it is
// never part of a Set.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Set is an ordered collection of procedure code options with O(1) membership
// checks. A Set is immutable after construction and safe for concurrent reads.
type Set struct {
	options []Option
	index   map[string]int
}

// New builds a Set from the supplied options, preserving order. Options with
// an empty value are skipped; a duplicated value keeps its first occurrence.
func New(options ...Option) Set {
	set := Set{index: make(map[string]int, len(options))}
	for _, opt := range options {
		if opt.Value == "" {
			continue
		}
		if _, exists := set.index[opt.Value]; exists {
			continue
		}
		if opt.Label == "" {
			opt.Label = opt.Value
		}
		set.index[opt.Value] = len(set.options)
		set.options = append(set.options, opt)
	}
	return set
}

// Has reports whether value is a known procedure code.
func (s Set) Has(value string) bool {
	_, ok := s.index[value]
	return ok
}

// Label returns the display label for a code, empty when the code is unknown.
func (s Set) Label(value string) string {
	i, ok := s.index[value]
	if !ok {
		return ""
	}
	return s.options[i].Label
}

// Values returns the code values in catalog order.
func (s Set) Values() []string {
	out := make([]string, len(s.options))
	for i, opt := range s.options {
		out[i] = opt.Value
	}
	return out
}

// Options returns a copy of the options in catalog order.
func (s Set) Options() []Option {
	return append([]Option(nil), s.options...)
}

// Len returns the number of options in the set.
func (s Set) Len() int { return len(s.options) }

// Empty reports whether the set holds no options.
func (s Set) Empty() bool { return len(s.options) == 0 }
