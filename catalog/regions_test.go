package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Đà Nẵng", "da nang"},
		{"Hồ Chí Minh", "ho chi minh"},
		{"  Hội An  ", "hoi an"},
		{"SAPA", "sapa"},
		{"Phú Quốc", "phu quoc"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), tc.in)
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Đà Nẵng", "da-nang"},
		{"danang", "da-nang"},
		{"Da Nang, Vietnam", "da-nang"},
		{"Saigon", "ho-chi-minh"},
		{"HCMC", "ho-chi-minh"},
		{"hotels in hoi an", "hoi-an"},
		{"West Lake", "tay-ho"},
		{"Marble Mountains", "ngu-hanh-son"},
	}
	for _, tc := range cases {
		region, ok := Resolve(tc.in)
		require.True(t, ok, tc.in)
		assert.Equal(t, tc.want, region.ID, tc.in)
	}

	_, ok := Resolve("Atlantis")
	assert.False(t, ok)
	_, ok = Resolve("")
	assert.False(t, ok)
}

func TestResolveNeverContainsToCountry(t *testing.T) {
	// "Vietnam" alone resolves exactly, but a longer string containing it
	// must not collapse to the whole country
	region, ok := Resolve("Vietnam")
	require.True(t, ok)
	assert.Equal(t, "vn", region.ID)

	_, ok = Resolve("somewhere nice in viet nam countryside")
	assert.False(t, ok)
}

func TestDescendants(t *testing.T) {
	ids := Descendants("da-nang")
	assert.Contains(t, ids, "da-nang")
	assert.Contains(t, ids, "hai-chau")
	assert.Contains(t, ids, "my-khe")
	assert.NotContains(t, ids, "hanoi")

	// leaf regions return only themselves
	assert.Equal(t, []string{"my-khe"}, Descendants("my-khe"))

	// the country covers everything
	all := Descendants("vn")
	assert.Contains(t, all, "old-town")
	assert.Contains(t, all, "district-1")
}

func TestRegionName(t *testing.T) {
	assert.Equal(t, "Đà Nẵng", RegionName("da-nang"))
	assert.Equal(t, "unknown-id", RegionName("unknown-id"))
}
