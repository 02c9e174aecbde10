package queries

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"carevacay/internal/domain/catalog"
	"carevacay/internal/domain/property"
	"carevacay/internal/infra"
	"carevacay/internal/pkg/config"
	"carevacay/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/karlseguin/ccache/v3"
)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error)
	ListAll(ctx context.Context) ([]*property.Property, error)
}

type CatalogQueries interface {
	Search(ctx context.Context, spec catalog.FilterSpec, key catalog.SortKey) (*SearchResult, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type catalogQueriesImpl struct {
	store PropertyReadStore
	cache *ccache.Cache[*SearchResult]
	cfg   config.CatalogConfig
}

func NewCatalogQueries(store PropertyReadStore, cfg config.CatalogConfig) CatalogQueries {
	return &catalogQueriesImpl{
		store: store,
		cache: ccache.New(ccache.Configure[*SearchResult]().MaxSize(cfg.CacheMaxEntries)),
		cfg:   cfg,
	}
}

func (q *catalogQueriesImpl) Search(ctx context.Context, spec catalog.FilterSpec, key catalog.SortKey) (*SearchResult, error) {
	cacheKey := searchFingerprint(spec, key)
	if item := q.cache.Get(cacheKey); item != nil && !item.Expired() {
		return item.Value(), nil
	}

	listings, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	matched := catalog.Search(listings, spec, key)
	result := &SearchResult{
		Properties: FromProperties(matched),
		Total:      len(matched),
	}

	q.cache.Set(cacheKey, result, q.cfg.CacheTTL)
	return result, nil
}

func (q *catalogQueriesImpl) GetProperty(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return FromProperty(p), nil
}

// searchFingerprint canonicalizes a filter spec into a cache key. Slices are
// sorted so logically equal specs share an entry.
func searchFingerprint(spec catalog.FilterSpec, key catalog.SortKey) string {
	var b strings.Builder
	b.WriteString("v1|")
	b.WriteString(strings.ToLower(strings.TrimSpace(spec.Location)))
	b.WriteByte('|')

	types := make([]string, len(spec.StayTypes))
	for i, t := range spec.StayTypes {
		types[i] = t.String()
	}
	sort.Strings(types)
	b.WriteString(strings.Join(types, ","))
	b.WriteByte('|')

	writeBound(&b, spec.MinPriceCents)
	writeBound(&b, spec.MaxPriceCents)
	b.WriteString(strconv.Itoa(spec.Guests))
	b.WriteByte('|')

	b.WriteString(sortedCSV(spec.AccessibilityFeatures))
	b.WriteByte('|')
	b.WriteString(sortedCSV(spec.Amenities))
	b.WriteByte('|')
	b.WriteString(string(key))
	return b.String()
}

func writeBound(b *strings.Builder, bound *int64) {
	if bound != nil {
		b.WriteString(strconv.FormatInt(*bound, 10))
	}
	b.WriteByte('|')
}

func sortedCSV(values []string) string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(strings.TrimSpace(v))
	}
	sort.Strings(lowered)
	return strings.Join(lowered, ",")
}
