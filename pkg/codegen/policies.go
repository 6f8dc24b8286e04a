package codegen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// SlugBudget covers the bare slug plus nine numbered variants.
	SlugBudget = 10

	// CodeBudget bounds wholesale regeneration of random codes.
	CodeBudget = 5

	storeCodeLen    = 5
	storeCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderCodeSuffix = 2 // random bytes → 4 hex chars
)

var (
	nonWordRE  = regexp.MustCompile(`[^a-z0-9\-]+`)
	dashRunRE  = regexp.MustCompile(`\-\-+`)
	edgeDashRE = regexp.MustCompile(`^\-+|\-+$`)
)

// Slugify turns a display name into a lowercase hyphenated URL segment.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonWordRE.ReplaceAllString(s, "")
	s = dashRunRE.ReplaceAllString(s, "-")
	s = edgeDashRE.ReplaceAllString(s, "")
	return s
}

// SlugPolicy derives a slug from name; on collision it appends -1, -2, …
// and, after the budget, falls back to a unix-timestamp suffix.
func SlugPolicy(name string) Policy {
	base := Slugify(name)
	if base == "" {
		base = "store"
	}

	return Policy{
		Name:   "slug",
		Budget: SlugBudget,
		Candidate: func(attempt int) string {
			if attempt == 0 {
				return base
			}
			return fmt.Sprintf("%s-%d", base, attempt)
		},
		Fallback: func() string {
			return fmt.Sprintf("%s-%d", base, time.Now().Unix())
		},
	}
}

// StoreCodePolicy generates 5-character uppercase alphanumeric store codes,
// regenerated wholesale on collision.
func StoreCodePolicy() Policy {
	return Policy{
		Name:      "store_code",
		Budget:    CodeBudget,
		Candidate: func(int) string { return randomUpper(storeCodeLen) },
	}
}

// OrderCodePolicy generates customer-facing receipt numbers of the form
// STORECODE-YYMMDD-XXXX. Embedding the store code and date keeps codes
// debuggable; the random suffix is regenerated wholesale on collision.
func OrderCodePolicy(storeCode string, now time.Time) Policy {
	date := now.Format("060102")

	return Policy{
		Name:   "order_code",
		Budget: CodeBudget,
		Candidate: func(int) string {
			return fmt.Sprintf("%s-%s-%s", storeCode, date, randomHexUpper(orderCodeSuffix))
		},
	}
}

func randomUpper(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)

	out := make([]byte, n)
	for i := range b {
		out[i] = storeCodeChars[int(b[i])%len(storeCodeChars)]
	}
	return string(out)
}

func randomHexUpper(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return strings.ToUpper(hex.EncodeToString(b))
}
