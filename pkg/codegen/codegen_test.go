package codegen

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func never(string) (bool, error)  { return false, nil }
func always(string) (bool, error) { return true, nil }

// existsFirstN reports the first n distinct candidates as taken.
func existsFirstN(n int) ExistsFunc {
	seen := 0
	return func(string) (bool, error) {
		if seen < n {
			seen++
			return true, nil
		}
		return false, nil
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Warung Bu Tini":       "warung-bu-tini",
		"  Kopi   & Roti!  ":   "kopi-roti",
		"--nasi--goreng--":     "nasi-goreng",
		"Sate Ayam 24/7":       "sate-ayam-247",
		"ÀçcénTs are stripped": "cnts-are-stripped",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestSlugPolicy_NumberedVariants(t *testing.T) {
	p := SlugPolicy("Warung Bu Tini")

	assert.Equal(t, "warung-bu-tini", p.Candidate(0))
	assert.Equal(t, "warung-bu-tini-1", p.Candidate(1))
	assert.Equal(t, "warung-bu-tini-9", p.Candidate(9))
}

func TestAllocate_FirstCandidateFree(t *testing.T) {
	code, err := Allocate(SlugPolicy("Warung Bu Tini"), never)
	require.NoError(t, err)
	assert.Equal(t, "warung-bu-tini", code)
}

func TestAllocate_RetriesPastCollisions(t *testing.T) {
	code, err := Allocate(SlugPolicy("Warung Bu Tini"), existsFirstN(3))
	require.NoError(t, err)
	assert.Equal(t, "warung-bu-tini-3", code)
}

func TestAllocate_SlugFallsBackToTimestamp(t *testing.T) {
	calls := 0
	exists := func(string) (bool, error) {
		calls++
		// All numbered variants collide; the timestamp fallback does not.
		return calls <= SlugBudget, nil
	}

	code, err := Allocate(SlugPolicy("Warung Bu Tini"), exists)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^warung-bu-tini-\d{10,}$`), code)
	assert.Equal(t, SlugBudget+1, calls)
}

func TestAllocate_OrderCodeExhaustsBudget(t *testing.T) {
	p := OrderCodePolicy("AB12C", time.Now())

	_, err := Allocate(p, always)
	assert.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestOrderCodePolicy_Format(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	p := OrderCodePolicy("AB12C", now)

	code := p.Candidate(0)
	assert.Regexp(t, regexp.MustCompile(`^AB12C-260314-[0-9A-F]{4}$`), code)

	// Regenerated wholesale: two attempts almost surely differ in suffix,
	// and always share the prefix.
	other := p.Candidate(1)
	assert.True(t, strings.HasPrefix(other, "AB12C-260314-"))
}

func TestStoreCodePolicy_Shape(t *testing.T) {
	p := StoreCodePolicy()

	code, err := Allocate(p, never)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{5}$`), code)
}

func TestAllocate_NeverReturnsTakenCode(t *testing.T) {
	// Distinct codes handed out under a shared "taken" set never repeat.
	taken := map[string]bool{}
	exists := func(code string) (bool, error) { return taken[code], nil }

	for i := 0; i < 50; i++ {
		code, err := Allocate(StoreCodePolicy(), exists)
		require.NoError(t, err)
		require.False(t, taken[code], "allocator returned a taken code")
		taken[code] = true
	}
}
