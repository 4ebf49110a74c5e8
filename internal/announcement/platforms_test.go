package announcement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchURL(t *testing.T) {
	p := Platform{
		Home:   "https://example.com/",
		Search: "https://example.com/search?q={q}",
	}

	assert.Equal(t, "https://example.com/search?q=machine+learning", p.SearchURL("machine learning"))
	assert.Equal(t, "https://example.com/", p.SearchURL("  "), "blank query links home")
}

func TestSearchPlatformsFilters(t *testing.T) {
	t.Run("CostModel", func(t *testing.T) {
		results := SearchPlatforms("go", "free", "")
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.Equal(t, "free", r.CostModel)
		}
	})

	t.Run("CertificatesOnly", func(t *testing.T) {
		results := SearchPlatforms("go", "", "yes")
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.True(t, r.OffersCertificates)
		}
	})

	t.Run("NoCertificates", func(t *testing.T) {
		results := SearchPlatforms("go", "", "no")
		require.NotEmpty(t, results)
		for _, r := range results {
			assert.False(t, r.OffersCertificates)
		}
	})

	t.Run("NoFiltersReturnsCatalog", func(t *testing.T) {
		results := SearchPlatforms("sql", "", "")
		assert.Len(t, results, len(Platforms))
		for _, r := range results {
			assert.True(t, strings.Contains(r.SearchURL, "sql") || r.SearchURL == r.Home)
		}
	})
}

func TestCatalogTemplatesAreWellFormed(t *testing.T) {
	for _, p := range Platforms {
		assert.Contains(t, p.Search, "{q}", p.Name)
		assert.NotContains(t, p.SearchURL("data"), "{q}", p.Name)
	}
}
