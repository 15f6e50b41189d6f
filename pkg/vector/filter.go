package vector

// Condition is a conjunction of metadata equality predicates.
type Condition map[string]string

// Filter is a disjunction of conditions: a document matches when any
// condition matches it in full. A nil or empty filter matches all.
type Filter struct {
	AnyOf []Condition
}

// NewFilter builds a filter from conditions.
func NewFilter(conds ...Condition) *Filter {
	return &Filter{AnyOf: conds}
}

// ForUserPapers builds the RAG corpus filter: the user's vectors,
// optionally restricted to specific papers.
func ForUserPapers(userID string, paperIDs []string) *Filter {
	if len(paperIDs) == 0 {
		return NewFilter(Condition{MetaUserID: userID})
	}
	conds := make([]Condition, len(paperIDs))
	for i, pid := range paperIDs {
		conds[i] = Condition{MetaUserID: userID, MetaPaperID: pid}
	}
	return NewFilter(conds...)
}

// Matches evaluates cond against metadata.
func (c Condition) Matches(metadata map[string]string) bool {
	for key, want := range c {
		if metadata[key] != want {
			return false
		}
	}
	return true
}

// Matches evaluates the filter against metadata.
func (f *Filter) Matches(metadata map[string]string) bool {
	if f == nil || len(f.AnyOf) == 0 {
		return true
	}
	for _, cond := range f.AnyOf {
		if cond.Matches(metadata) {
			return true
		}
	}
	return false
}
