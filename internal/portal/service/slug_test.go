package service

import (
	"context"
	"testing"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Acme Gym":        "acme-gym",
		"Bob's Gym":       "bobs-gym",
		"  Spaced   Out ": "spaced-out",
		"ALL CAPS":        "all-caps",
		"hy-phen-ated":    "hy-phen-ated",
		"trail-ing- ":     "trail-ing",
		"!!!":             "",
		"":                "",
		"123 Fitness":     "123-fitness",
	}

	for in, want := range cases {
		require.Equal(t, want, slugify(in), "slugify(%q)", in)
	}
}

func TestNextSlugCandidate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "acme-gym", nextSlugCandidate("acme-gym", 0))
	require.Equal(t, "acme-gym-1", nextSlugCandidate("acme-gym", 1))
	require.Equal(t, "acme-gym-2", nextSlugCandidate("acme-gym", 2))
}

func TestAllocateSlug(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	t.Run("rejects unnormalizable base names", func(t *testing.T) {
		_, _, err := allocateSlug(ctx, st.Organizations(), "!!!")
		require.ErrorIs(t, err, ErrBusinessNameRequired)
	})

	t.Run("returns base slug when free", func(t *testing.T) {
		slug, attempt, err := allocateSlug(ctx, st.Organizations(), "Acme Gym")
		require.NoError(t, err)
		require.Equal(t, "acme-gym", slug)
		require.Equal(t, 0, attempt)
	})

	t.Run("appends suffixes for taken slugs", func(t *testing.T) {
		for _, slug := range []string{"acme-gym", "acme-gym-1"} {
			require.NoError(t, st.Organizations().CreateOrganization(ctx, domain.Organization{
				ID:     idx.New().String(),
				Name:   "Acme Gym",
				Slug:   slug,
				Status: domain.OrganizationActive,
			}))
		}

		slug, attempt, err := allocateSlug(ctx, st.Organizations(), "Acme Gym")
		require.NoError(t, err)
		require.Equal(t, "acme-gym-2", slug)
		require.Equal(t, 2, attempt)
	})
}
