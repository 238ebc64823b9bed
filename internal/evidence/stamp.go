// Package evidence implements the evidential objects tasks are built from:
// stamps (evidential bases), sentences (judgements/questions) and tasks
// (sentences with budgets and a derivation parent chain).
package evidence

// Stamp is an evidential base: an ordered, length-bounded list of positive
// integer evidential serials plus the creation time and the stamp's own
// serial number.
type Stamp struct {
	Base    []int64
	Created int64
	Serial  int64
}

// DefaultMaxLength is L, the default bound on stamp base length.
const DefaultMaxLength = 8

// NewStamp creates a fresh single-element stamp for newly input evidence.
func NewStamp(serial, created int64) Stamp {
	return Stamp{Base: []int64{serial}, Created: created, Serial: serial}
}

// Overlaps reports whether two stamps share any evidential serial. A
// derivation combining two overlapping stamps must be aborted (§3.5).
func (s Stamp) Overlaps(o Stamp) bool {
	seen := make(map[int64]struct{}, len(s.Base))
	for _, v := range s.Base {
		seen[v] = struct{}{}
	}
	for _, v := range o.Base {
		if _, ok := seen[v]; ok {
			return true
		}
	}
	return false
}

// Merge interleaves two evidential bases, longer first then shorter,
// truncated to maxLen. The result's own serial is the first stamp's serial
// and its creation time is the later of the two, matching how a derivation
// inherits the identity of its primary premise while recording recency.
func Merge(a, b Stamp, maxLen int) Stamp {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	first, second := a, b
	if len(second.Base) > len(first.Base) {
		first, second = second, first
	}
	merged := make([]int64, 0, maxLen)
	i, j := 0, 0
	for len(merged) < maxLen && (i < len(first.Base) || j < len(second.Base)) {
		if i < len(first.Base) {
			merged = append(merged, first.Base[i])
			i++
		}
		if len(merged) >= maxLen {
			break
		}
		if j < len(second.Base) {
			merged = append(merged, second.Base[j])
			j++
		}
	}
	created := a.Created
	if b.Created > created {
		created = b.Created
	}
	return Stamp{Base: merged, Created: created, Serial: a.Serial}
}
