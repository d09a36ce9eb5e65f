package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFamily(t *testing.T) {
	cases := []struct {
		kind uint16
		want Family
	}{
		{0, FamilyReplaceable},
		{3, FamilyReplaceable},
		{1, FamilyRegular},
		{2, FamilyRegular},
		{13, FamilyRegular},
		{1059, FamilyRegular},
		{9999, FamilyRegular},
		{10000, FamilyReplaceable},
		{19999, FamilyReplaceable},
		{20000, FamilyRegular},
		{29999, FamilyRegular},
		{30000, FamilyAddressable},
		{39999, FamilyAddressable},
		{40000, FamilyRegular},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, KindFamily(c.kind), "kind %d", c.kind)
	}
}

func TestClassOf_AddressableResolvesDTag(t *testing.T) {
	ev := Event{
		Kind: 30023,
		Tags: Tags{{"t", "nature"}, {"d", "my-article"}},
	}
	c := ClassOf(ev)
	assert.Equal(t, FamilyAddressable, c.Family)
	assert.Equal(t, "my-article", c.D)
}

func TestClassOf_AddressableWithoutDTag(t *testing.T) {
	c := ClassOf(Event{Kind: 30000})
	assert.Equal(t, FamilyAddressable, c.Family)
	assert.Equal(t, "", c.D)
}

func TestClassOf_RegularIgnoresDTag(t *testing.T) {
	c := ClassOf(Event{Kind: 1, Tags: Tags{{"d", "ignored"}}})
	assert.Equal(t, FamilyRegular, c.Family)
	assert.Equal(t, "", c.D)
}

func TestTags_Lookups(t *testing.T) {
	ts := Tags{
		{"e", "aaa"},
		{"p", "bbb", "wss://relay.example"},
		{"p", "ccc"},
		{"name-only"},
	}

	tag, ok := ts.First("p")
	assert.True(t, ok)
	assert.Equal(t, "bbb", tag.Value())

	_, ok = ts.First("q")
	assert.False(t, ok)

	assert.Equal(t, "aaa", ts.Value("e"))
	assert.Equal(t, "", ts.Value("missing"))
	assert.Equal(t, "", ts.Value("name-only"))
}
