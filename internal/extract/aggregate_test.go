package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_AddIsIdempotent(t *testing.T) {
	agg := NewAggregate()
	agg.Add(CategoryFunction, "strlen")
	agg.Add(CategoryFunction, "strlen")

	assert.Equal(t, 1, agg.Count(CategoryFunction))
}

func TestAggregate_MergeIsUnion(t *testing.T) {
	a := NewAggregate()
	a.Add(CategoryFunction, "foo")
	a.Add(CategoryClass, "Foo")

	b := NewAggregate()
	b.Add(CategoryFunction, "foo")
	b.Add(CategoryFunction, "bar")

	a.Merge(b)

	assert.Equal(t, 2, a.Count(CategoryFunction))
	assert.Equal(t, 1, a.Count(CategoryClass))
	assert.True(t, a.Contains(CategoryFunction, "bar"))
}

func TestAggregate_MergeIsCommutative(t *testing.T) {
	build := func(names ...string) *Aggregate {
		agg := NewAggregate()
		for _, n := range names {
			agg.Add(CategoryMethod, n)
		}
		return agg
	}

	left := build("a1", "b2")
	left.Merge(build("b2", "c3"))

	right := build("b2", "c3")
	right.Merge(build("a1", "b2"))

	assert.Equal(t, left.Names(CategoryMethod), right.Names(CategoryMethod))
}
