//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"carevacay/internal/domain/catalog"
	"carevacay/internal/domain/property"
	"carevacay/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func pricesOf(ps []*property.Property) []int64 {
	out := make([]int64, len(ps))
	for i, p := range ps {
		out[i] = p.BasePriceCents
	}
	return out
}

func int64Ptr(v int64) *int64 { return &v }

func TestSearch(t *testing.T) {
	t.Run("filters by price and sorts low to high", func(t *testing.T) {
		listing := []*property.Property{
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
				b.City = "Brisbane"
				b.BasePriceCents = 12000
			}).Build(),
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
				b.City = "Brisbane"
				b.BasePriceCents = 18000
			}).Build(),
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
				b.City = "Brisbane"
				b.BasePriceCents = 9000
			}).Build(),
		}

		spec := catalog.FilterSpec{
			Location:      "Brisbane",
			MinPriceCents: int64Ptr(10000),
		}
		got := catalog.Search(listing, spec, catalog.SortPriceLow)

		if diff := cmp.Diff([]int64{12000, 18000}, pricesOf(got)); diff != "" {
			t.Errorf("price order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty spec matches everything", func(t *testing.T) {
		listing := []*property.Property{
			builder.NewPropertyBuilder().Build(),
			builder.NewPropertyBuilder().Build(),
		}

		got := catalog.Search(listing, catalog.FilterSpec{}, catalog.SortKey(""))

		require.Len(t, got, 2)
		assert.Equal(t, listing[0].ID, got[0].ID, "unknown sort key keeps catalog order")
		assert.Equal(t, listing[1].ID, got[1].ID)
	})

	t.Run("contradictory price bounds yield empty result", func(t *testing.T) {
		listing := []*property.Property{
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
				b.BasePriceCents = 15000
			}).Build(),
		}

		spec := catalog.FilterSpec{
			MinPriceCents: int64Ptr(20000),
			MaxPriceCents: int64Ptr(10000),
		}
		got := catalog.Search(listing, spec, catalog.SortPriceLow)

		assert.Empty(t, got)
	})

	t.Run("location match", func(t *testing.T) {
		brisbane := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.City = "Brisbane"
			b.State = "QLD"
		}).Build()
		sunshine := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.City = "Sunshine Coast"
			b.State = "QLD"
		}).Build()
		listing := []*property.Property{brisbane, sunshine}

		cases := []struct {
			name     string
			location string
			want     int
		}{
			{name: "exact city", location: "Brisbane", want: 1},
			{name: "case insensitive substring", location: "bris", want: 1},
			{name: "city plus state widens the haystack", location: "sunshine coast qld", want: 1},
			{name: "whitespace only means no constraint", location: "   ", want: 2},
			{name: "no match", location: "Melbourne", want: 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := catalog.Search(listing, catalog.FilterSpec{Location: tc.location}, catalog.SortNewest)
				assert.Len(t, got, tc.want)
			})
		}
	})

	t.Run("stay type filter is a disjunction over requested types", func(t *testing.T) {
		listing := []*property.Property{
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
				b.StayType = property.StayTypeShortTerm
			}).Build(),
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
				b.StayType = property.StayTypeSupported
			}).Build(),
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
				b.StayType = property.StayTypeRespite
			}).Build(),
		}

		spec := catalog.FilterSpec{
			StayTypes: []property.StayType{property.StayTypeShortTerm, property.StayTypeRespite},
		}
		got := catalog.Search(listing, spec, catalog.SortNewest)

		require.Len(t, got, 2)
	})

	t.Run("guest capacity filter", func(t *testing.T) {
		listing := []*property.Property{
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) { b.MaxGuests = 2 }).Build(),
			builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) { b.MaxGuests = 6 }).Build(),
		}

		got := catalog.Search(listing, catalog.FilterSpec{Guests: 4}, catalog.SortNewest)

		require.Len(t, got, 1)
		assert.Equal(t, 6, got[0].MaxGuests)
	})

	t.Run("accessibility features require full subset", func(t *testing.T) {
		full := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.AccessibilityFeatures = []string{"wheelchair_access", "ceiling_hoist", "step_free_entry"}
		}).Build()
		partial := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.AccessibilityFeatures = []string{"wheelchair_access"}
		}).Build()
		listing := []*property.Property{full, partial}

		spec := catalog.FilterSpec{
			AccessibilityFeatures: []string{"Wheelchair_Access", "ceiling_hoist"},
		}
		got := catalog.Search(listing, spec, catalog.SortNewest)

		require.Len(t, got, 1)
		assert.Equal(t, full.ID, got[0].ID)
	})

	t.Run("sort newest uses createdAt descending", func(t *testing.T) {
		older := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		}).Build()
		newer := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		}).Build()
		listing := []*property.Property{older, newer}

		got := catalog.Search(listing, catalog.FilterSpec{}, catalog.SortNewest)

		require.Len(t, got, 2)
		assert.Equal(t, newer.ID, got[0].ID)
	})

	t.Run("rating sort currently ranks by price descending", func(t *testing.T) {
		cheap := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.BasePriceCents = 9000
		}).Build()
		dear := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.BasePriceCents = 24000
		}).Build()
		listing := []*property.Property{cheap, dear}

		got := catalog.Search(listing, catalog.FilterSpec{}, catalog.SortRating)

		require.Len(t, got, 2)
		assert.Equal(t, dear.ID, got[0].ID)
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		first := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.BasePriceCents = 15000
		}).Build()
		second := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.BasePriceCents = 15000
		}).Build()
		listing := []*property.Property{first, second}

		got := catalog.Search(listing, catalog.FilterSpec{}, catalog.SortPriceLow)

		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	})
}

func genCatalog(t *rapid.T) []*property.Property {
	n := rapid.IntRange(0, 30).Draw(t, "n")
	listing := make([]*property.Property, n)
	for i := range listing {
		price := rapid.Int64Range(0, 50000).Draw(t, "price")
		guests := rapid.IntRange(1, 10).Draw(t, "guests")
		city := rapid.SampledFrom([]string{"Brisbane", "Sunshine Coast", "Gold Coast"}).Draw(t, "city")
		listing[i] = builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.BasePriceCents = price
			b.MaxGuests = guests
			b.City = city
		}).Build()
	}
	return listing
}

func genSpec(t *rapid.T) catalog.FilterSpec {
	spec := catalog.FilterSpec{
		Guests: rapid.IntRange(0, 12).Draw(t, "specGuests"),
	}
	if rapid.Bool().Draw(t, "hasMin") {
		spec.MinPriceCents = int64Ptr(rapid.Int64Range(0, 60000).Draw(t, "min"))
	}
	if rapid.Bool().Draw(t, "hasMax") {
		spec.MaxPriceCents = int64Ptr(rapid.Int64Range(0, 60000).Draw(t, "max"))
	}
	if rapid.Bool().Draw(t, "hasLocation") {
		spec.Location = rapid.SampledFrom([]string{"Brisbane", "coast", "Melbourne"}).Draw(t, "location")
	}
	return spec
}

func TestSearchProperties(t *testing.T) {
	t.Run("result is a subset of the catalog", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			listing := genCatalog(rt)
			spec := genSpec(rt)

			got := catalog.Search(listing, spec, catalog.SortPriceLow)

			index := make(map[*property.Property]bool, len(listing))
			for _, p := range listing {
				index[p] = true
			}
			for _, p := range got {
				if !index[p] {
					rt.Fatalf("result contains a property not in the catalog: %s", p.ID)
				}
			}
			if len(got) > len(listing) {
				rt.Fatalf("result larger than catalog: %d > %d", len(got), len(listing))
			}
		})
	})

	t.Run("search never mutates its input", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			listing := genCatalog(rt)
			spec := genSpec(rt)

			before := make([]*property.Property, len(listing))
			copy(before, listing)

			catalog.Search(listing, spec, catalog.SortPriceHigh)

			for i := range before {
				if listing[i] != before[i] {
					rt.Fatalf("catalog slice reordered at %d", i)
				}
			}
		})
	})

	t.Run("search is deterministic", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			listing := genCatalog(rt)
			spec := genSpec(rt)
			key := rapid.SampledFrom([]catalog.SortKey{
				catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortNewest, catalog.SortRating,
			}).Draw(rt, "key")

			first := catalog.Search(listing, spec, key)
			second := catalog.Search(listing, spec, key)

			if len(first) != len(second) {
				rt.Fatalf("result length changed between runs: %d vs %d", len(first), len(second))
			}
			for i := range first {
				if first[i] != second[i] {
					rt.Fatalf("result order changed between runs at %d", i)
				}
			}
		})
	})

	t.Run("price-low output is sorted", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			listing := genCatalog(rt)

			got := catalog.Search(listing, catalog.FilterSpec{}, catalog.SortPriceLow)

			for i := 1; i < len(got); i++ {
				if got[i-1].BasePriceCents > got[i].BasePriceCents {
					rt.Fatalf("not sorted at %d: %d > %d", i, got[i-1].BasePriceCents, got[i].BasePriceCents)
				}
			}
		})
	})
}
