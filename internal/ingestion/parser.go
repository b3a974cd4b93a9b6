package ingestion

import (
	"context"
	"fmt"

	"github.com/insightpulse/insightpulse/internal/domain/models"
	"github.com/insightpulse/insightpulse/internal/logger"
	"github.com/insightpulse/insightpulse/internal/storage"
)

// requiredDataPointHeaders must all be present (after normalization) for a
// file to be treated as a datapoint file. "source url" normalizes to
// "source_url".
var requiredDataPointHeaders = []string{
	"country", "year", "brand", "metric", "value", "source_url", "category",
}

// refCache memoizes get-or-create lookups per reference table so a file with
// thousands of rows hits each name once.
type refCache struct {
	ids    map[string]int64
	lookup func(name string) (int64, error)
}

func newRefCache(lookup func(name string) (int64, error)) *refCache {
	return &refCache{ids: map[string]int64{}, lookup: lookup}
}

func (c *refCache) id(name string) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := c.ids[name]; ok {
		return &id, nil
	}
	id, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	c.ids[name] = id
	return &id, nil
}

// parseDataPointRow validates one row against the required headers and shapes
// it into a DataPoint with reference names still unresolved. The second
// return is false when a required field is missing or empty; such rows are
// skipped, never fatal.
func parseDataPointRow(row map[string]string) (models.DataPoint, rowRefs, bool) {
	for _, h := range requiredDataPointHeaders {
		if get(row, h) == "" {
			return models.DataPoint{}, rowRefs{}, false
		}
	}

	dp := models.DataPoint{
		SourceURL: get(row, "source_url"),
		Insight:   get(row, "insight"),
		Year:      get(row, "year"),
		Metric:    get(row, "metric"),
		Value:     get(row, "value"),
	}
	if s := get(row, "summary"); s != "" {
		dp.Summary = &s
	}
	if u := get(row, "unit"); u != "" {
		dp.Unit = &u
	}
	dp.MetricCategory = ClassifyMetric(dp.Metric, dp.Insight, deref(dp.Summary))

	refs := rowRefs{
		country:  get(row, "country"),
		category: get(row, "category"),
		brand:    get(row, "brand"),
	}
	return dp, refs, true
}

// rowRefs carries the reference names of a row until ids are resolved.
type rowRefs struct {
	country  string
	category string
	brand    string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// persistDataPoints resolves references, batches, and flushes a datapoint
// table. Returns inserted and skipped row counts.
func persistDataPoints(ctx context.Context, t *table, repo storage.Repository, batch int) (int, int, error) {
	countries := newRefCache(repo.GetOrCreateCountry)
	categories := newRefCache(repo.GetOrCreateCategory)
	brands := newRefCache(repo.GetOrCreateBrand)

	buf := make([]models.DataPoint, 0, batch)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertDataPointsBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	inserted, skipped := 0, 0
	for i, row := range t.rows {
		select {
		case <-ctx.Done():
			return 0, 0, ctx.Err()
		default:
		}

		dp, refs, ok := parseDataPointRow(row)
		if !ok {
			skipped++
			logger.L().Warn().Int("line", i+2).Msg("row skipped: missing required fields")
			continue
		}

		var err error
		if dp.CountryID, err = countries.id(refs.country); err != nil {
			return 0, 0, fmt.Errorf("resolve country %q: %w", refs.country, err)
		}
		if dp.CategoryID, err = categories.id(refs.category); err != nil {
			return 0, 0, fmt.Errorf("resolve category %q: %w", refs.category, err)
		}
		if dp.BrandID, err = brands.id(refs.brand); err != nil {
			return 0, 0, fmt.Errorf("resolve brand %q: %w", refs.brand, err)
		}

		buf = append(buf, dp)
		inserted++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, 0, fmt.Errorf("flush batch ending line %d: %w", i+2, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, 0, fmt.Errorf("final flush: %w", err)
	}
	return inserted, skipped, nil
}
