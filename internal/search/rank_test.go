package search

import (
	"fmt"
	"testing"

	"pklradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeVendors(names ...string) []*entity.Vendor {
	vendors := make([]*entity.Vendor, 0, len(names))
	for _, name := range names {
		vendors = append(vendors, &entity.Vendor{BusinessName: name, Category: "makanan"})
	}

	return vendors
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "baksopakbudi", Normalize("Bakso  Pak Budi"))
	assert.Equal(t, "baksopakbudi", Normalize("  bakso\tpak\nbudi "))
	assert.Equal(t, "", Normalize("   \t\n"))
}

func TestRankBySearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	t.Run("returns candidates unscored in original order", func(t *testing.T) {
		t.Parallel()

		vendors := makeVendors("Bakso Pak Budi", "Es Teh Segar", "Sate Ayam Bu Sri")
		results := RankBySearch(vendors, "   ", DefaultThreshold)

		require.Len(t, results, 3)
		for i, sv := range results {
			assert.Same(t, vendors[i], sv.Vendor)
			assert.Zero(t, sv.Score)
		}
	})

	t.Run("caps the result at fifty", func(t *testing.T) {
		t.Parallel()

		names := make([]string, 80)
		for i := range names {
			names[i] = fmt.Sprintf("Warung %d", i)
		}

		results := RankBySearch(makeVendors(names...), "", DefaultThreshold)
		assert.Len(t, results, EmptyQueryLimit)
	})
}

func TestRankBySearch_SubstringOverride(t *testing.T) {
	t.Parallel()

	vendors := makeVendors("Bakso Pak Budi", "Es Teh Segar")
	results := RankBySearch(vendors, "bakso", DefaultThreshold)

	require.NotEmpty(t, results)
	assert.Equal(t, "Bakso Pak Budi", results[0].Vendor.BusinessName)
	assert.InDelta(t, 1.0, results[0].Score, 1e-12)
}

func TestRankBySearch_CategoryMatch(t *testing.T) {
	t.Parallel()

	vendors := []*entity.Vendor{
		{BusinessName: "Pak Budi", Category: "bakso"},
		{BusinessName: "Es Teh Segar", Category: "minuman"},
	}
	results := RankBySearch(vendors, "bakso", DefaultThreshold)

	require.NotEmpty(t, results)
	assert.Equal(t, "Pak Budi", results[0].Vendor.BusinessName)
	assert.InDelta(t, 1.0, results[0].Score, 1e-12)
}

func TestRankBySearch_ThresholdAndFallback(t *testing.T) {
	t.Parallel()

	t.Run("drops weak matches when a strong one exists", func(t *testing.T) {
		t.Parallel()

		vendors := makeVendors("Bakso Pak Budi", "Zzz Qqq Xxx")
		results := RankBySearch(vendors, "bakso", DefaultThreshold)

		require.Len(t, results, 1)
		assert.Equal(t, "Bakso Pak Budi", results[0].Vendor.BusinessName)
	})

	t.Run("falls back to top candidates when nothing clears the threshold", func(t *testing.T) {
		t.Parallel()

		vendors := makeVendors("Zzz Qqq", "Xxx Www", "Vvv Uuu")
		results := RankBySearch(vendors, "bakso", DefaultThreshold)

		assert.Len(t, results, 3)
	})

	t.Run("fallback caps at twenty", func(t *testing.T) {
		t.Parallel()

		names := make([]string, 30)
		for i := range names {
			names[i] = fmt.Sprintf("Zzz %d", i)
		}
		vendors := make([]*entity.Vendor, 0, len(names))
		for _, name := range names {
			vendors = append(vendors, &entity.Vendor{BusinessName: name, Category: "zzz"})
		}

		results := RankBySearch(vendors, "qqqq", DefaultThreshold)
		assert.Len(t, results, FallbackLimit)
	})

	t.Run("empty candidates give empty result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, RankBySearch(nil, "bakso", DefaultThreshold))
	})
}

func TestRankBySearch_PoolCap(t *testing.T) {
	t.Parallel()

	// The only exact match sits past the pool cap, so it must never be scored.
	names := make([]string, PoolCap)
	for i := range names {
		names[i] = fmt.Sprintf("Warung %d", i)
	}
	vendors := makeVendors(names...)
	vendors = append(vendors, makeVendors("Bakso Pak Budi")...)

	results := RankBySearch(vendors, "bakso", DefaultThreshold)
	for _, sv := range results {
		assert.NotEqual(t, "Bakso Pak Budi", sv.Vendor.BusinessName)
	}
}

func TestRankBySearch_StableTies(t *testing.T) {
	t.Parallel()

	// Identical candidates score identically; order must be preserved.
	first := &entity.Vendor{BusinessName: "Bakso Urat", Category: "makanan"}
	second := &entity.Vendor{BusinessName: "Bakso Urat", Category: "makanan"}

	results := RankBySearch([]*entity.Vendor{first, second}, "bakso", DefaultThreshold)

	require.Len(t, results, 2)
	assert.Same(t, first, results[0].Vendor)
	assert.Same(t, second, results[1].Vendor)
}
