package domain

// AchievementSet groups achievements by category. Slice order is insertion
// order and matters only for display.
type AchievementSet map[Category][]*Achievement

// NewAchievementSet returns a set with all six categories present and empty.
func NewAchievementSet() AchievementSet {
	s := make(AchievementSet, len(Categories))
	for _, c := range Categories {
		s[c] = []*Achievement{}
	}
	return s
}

// Add appends a to the list of its own category.
func (s AchievementSet) Add(a *Achievement) {
	c := a.Category()
	s[c] = append(s[c], a)
}

// Find returns the achievement with the given ID, if present.
func (s AchievementSet) Find(id string) (*Achievement, bool) {
	for _, c := range Categories {
		for _, a := range s[c] {
			if a.ID == id {
				return a, true
			}
		}
	}
	return nil, false
}

// Remove deletes the achievement with the given ID and returns it.
func (s AchievementSet) Remove(id string) (*Achievement, bool) {
	for _, c := range Categories {
		items := s[c]
		for i, a := range items {
			if a.ID != id {
				continue
			}
			s[c] = append(items[:i:i], items[i+1:]...)
			return a, true
		}
	}
	return nil, false
}

// Len counts achievements across all categories.
func (s AchievementSet) Len() int {
	n := 0
	for _, items := range s {
		n += len(items)
	}
	return n
}

// All returns every achievement in category display order.
func (s AchievementSet) All() []*Achievement {
	out := make([]*Achievement, 0, s.Len())
	for _, c := range Categories {
		out = append(out, s[c]...)
	}
	return out
}

// Clone deep-copies the set so callers can mutate the copy freely.
func (s AchievementSet) Clone() AchievementSet {
	out := NewAchievementSet()
	for c, items := range s {
		cloned := make([]*Achievement, 0, len(items))
		for _, a := range items {
			cp := *a
			cloned = append(cloned, &cp)
		}
		out[c] = cloned
	}
	return out
}

// Merge returns a clone of s with every achievement of other appended.
func (s AchievementSet) Merge(other AchievementSet) AchievementSet {
	out := s.Clone()
	for _, a := range other.All() {
		cp := *a
		out.Add(&cp)
	}
	return out
}
