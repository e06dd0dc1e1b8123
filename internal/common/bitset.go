package common

// BitSet is a grow-on-demand set of small non-negative integers.
// It is used to track which field indices are excluded from serialization.
type BitSet struct {
	words []uint64
}

// Insert adds index i to the set. Negative indices are ignored.
func (b *BitSet) Insert(i int) {
	if i < 0 {
		return
	}

	word := i / 64
	for len(b.words) <= word {
		b.words = append(b.words, 0)
	}

	b.words[word] |= 1 << uint(i%64)
}

// Contains reports whether index i is in the set.
func (b *BitSet) Contains(i int) bool {
	if i < 0 {
		return false
	}

	word := i / 64
	if word >= len(b.words) {
		return false
	}

	return b.words[word]&(1<<uint(i%64)) != 0
}

// IsEmpty reports whether no index is set.
func (b *BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Indices returns all set indices in ascending order.
func (b *BitSet) Indices() []int {
	var out []int

	for wi, w := range b.words {
		for bit := 0; bit < 64; bit++ {
			if w&(1<<uint(bit)) != 0 {
				out = append(out, wi*64+bit)
			}
		}
	}

	return out
}
