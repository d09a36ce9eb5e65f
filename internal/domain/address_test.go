package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_RoundTrip(t *testing.T) {
	a := Address{Kind: 30023, PubKey: "pub1", D: "my-article"}
	got, err := ParseAddress(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestParseAddress_DMayContainColons(t *testing.T) {
	got, err := ParseAddress("30023:pub1:a:b:c")
	require.NoError(t, err)
	assert.Equal(t, Address{Kind: 30023, PubKey: "pub1", D: "a:b:c"}, got)
}

func TestParseAddress_EmptyD(t *testing.T) {
	got, err := ParseAddress("30000:pub1:")
	require.NoError(t, err)
	assert.Equal(t, "", got.D)
}

func TestParseAddress_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"30023",
		"30023:pub1",
		"x:pub1:d",
		"-1:pub1:d",
		"70000:pub1:d", // out of uint16 range
		"30023::d",     // empty pubkey
	} {
		_, err := ParseAddress(s)
		assert.ErrorIs(t, err, ErrBadAddress, "input %q", s)
	}
}

func TestAddress_Tag(t *testing.T) {
	a := Address{Kind: 30023, PubKey: "pub1", D: "post"}
	assert.Equal(t, Tag{"a", "30023:pub1:post"}, a.Tag(""))
	assert.Equal(t, Tag{"a", "30023:pub1:post", "wss://relay.example"}, a.Tag("wss://relay.example"))
}

func TestAddressOf(t *testing.T) {
	ev := Event{
		PubKey: "pub1",
		Kind:   30023,
		Tags:   Tags{{"d", "post"}},
	}
	a, ok := AddressOf(ev)
	require.True(t, ok)
	assert.Equal(t, "30023:pub1:post", a.String())

	_, ok = AddressOf(Event{PubKey: "pub1", Kind: 1})
	assert.False(t, ok)
}
