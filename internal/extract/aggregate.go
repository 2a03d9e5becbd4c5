package extract

// Aggregate accumulates unique symbol names per category. It is owned by a
// single run; merging is a set union, so the result is independent of the
// order files are processed in.
type Aggregate struct {
	sets map[Category]map[string]struct{}
}

// NewAggregate creates an empty aggregate with all four category sets.
func NewAggregate() *Aggregate {
	sets := make(map[Category]map[string]struct{}, len(Categories()))
	for _, c := range Categories() {
		sets[c] = make(map[string]struct{})
	}
	return &Aggregate{sets: sets}
}

// Add records a symbol name under a category. Re-adding is a no-op.
func (a *Aggregate) Add(c Category, name string) {
	a.sets[c][name] = struct{}{}
}

// Merge unions every category set of other into a.
func (a *Aggregate) Merge(other *Aggregate) {
	for _, c := range Categories() {
		for name := range other.sets[c] {
			a.sets[c][name] = struct{}{}
		}
	}
}

// Names returns the set of names for a category. The returned map is the
// aggregate's own storage; callers must not mutate it.
func (a *Aggregate) Names(c Category) map[string]struct{} {
	return a.sets[c]
}

// Count returns the number of unique names in a category.
func (a *Aggregate) Count(c Category) int {
	return len(a.sets[c])
}

// Contains reports whether name was recorded under the category.
func (a *Aggregate) Contains(c Category, name string) bool {
	_, ok := a.sets[c][name]
	return ok
}
