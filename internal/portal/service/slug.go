package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/northbeamhq/portal/internal/portal/store"
)

var ErrBusinessNameRequired = errors.New("business name does not normalize to a usable slug")

// slugRetryLimit caps the probe/insert loop. Hitting it means something is
// pathologically wrong with the slug namespace, not a normal collision.
const slugRetryLimit = 50

var nonWordRun = regexp.MustCompile(`[^a-z0-9\s-]+`)
var whitespaceRun = regexp.MustCompile(`[\s-]+`)

// slugify normalizes a display name into a URL-safe slug: lowercase, strip
// non-word characters, collapse whitespace runs to single hyphens, trim
// leading/trailing hyphens. Returns "" when nothing survives normalization.
func slugify(base string) string {
	s := strings.ToLower(strings.TrimSpace(base))
	s = nonWordRun.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// nextSlugCandidate returns the nth candidate for a base slug: the base
// itself for attempt 0, then "-1", "-2", ...
func nextSlugCandidate(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, attempt)
}

// allocateSlug probes existing organization slugs and returns the first free
// candidate. The probe is an optimization only: the unique index on
// organizations.slug is the real guard, and the caller must retry with the
// next candidate when the insert reports store.ErrAlreadyExists.
func allocateSlug(ctx context.Context, orgs store.Organizations, base string) (string, int, error) {
	slug := slugify(base)
	if slug == "" {
		return "", 0, ErrBusinessNameRequired
	}

	for attempt := 0; attempt < slugRetryLimit; attempt++ {
		candidate := nextSlugCandidate(slug, attempt)
		taken, err := orgs.ExistsOrganizationSlug(ctx, candidate)
		if err != nil {
			return "", 0, err
		}
		if !taken {
			return candidate, attempt, nil
		}
	}
	return "", 0, fmt.Errorf("no free slug for %q after %d attempts", base, slugRetryLimit)
}
