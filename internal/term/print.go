package term

// String renders the term's canonical Narsese form. It is identical to
// Key() today; kept as a separate method so output formatting can diverge
// from the equality key later without touching callers.
func (t Term) String() string { return t.key }
