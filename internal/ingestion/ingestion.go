package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/insightpulse/insightpulse/internal/logger"
	"github.com/insightpulse/insightpulse/internal/storage"
)

const defaultBatchSize = 5000

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.Repository {
	return storage.NewRepository(db)
}

// fileKind tells which table a file feeds, decided from its headers.
type fileKind int

const (
	kindUnknown fileKind = iota
	kindDataPoints
	kindVehicleSales
	kindFMCGSales
)

func (k fileKind) String() string {
	switch k {
	case kindDataPoints:
		return "data_points"
	case kindVehicleSales:
		return "vehicle_sales"
	case kindFMCGSales:
		return "fmcg_sales"
	default:
		return "unknown"
	}
}

// detectKind sniffs the table shape. Datapoint files carry metric+value,
// vehicle files carry oem_name, FMCG files carry product_name.
func detectKind(t *table) fileKind {
	switch {
	case t.hasHeader("metric") && t.hasHeader("value"):
		return kindDataPoints
	case t.hasHeader("oem_name"):
		return kindVehicleSales
	case t.hasHeader("product_name"):
		return kindFMCGSales
	default:
		return kindUnknown
	}
}

// ProcessDirectory ingests every .csv/.xlsx file found in dir.
//
//   - dir: directory containing input files.
//   - db:  open *sql.DB (PostgreSQL).
//
// Behavior:
//   - File type (datapoints, vehicle sales, FMCG sales) is detected from
//     the header row, not the filename.
//   - Uses a concurrency limit based on CPU count (min(4, NumCPU)), or the
//     provided clamp.
//   - Each file is parsed and inserted in batches via the repository.
//   - Already-ingested files (by name, via ingestion_log) are skipped
//     unless force is set.
//   - If any file returns error, remaining work is cancelled and that
//     error is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	// use indirection to allow tests to swap repository constructor
	repo := repoCtor(db)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".csv", ".xlsx":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no .csv or .xlsx files in %s", dir)
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("ingestion start")

	// Concurrency: default to min(4, NumCPU), or use provided clamp(1..8)
	maxParallel := 4
	if parallel > 0 {
		if parallel > 8 {
			parallel = 8
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("ingestion configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			// Idempotency: skip if already ingested, unless force
			exists, err := repo.HasIngestionForFile(base)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("check ingestion log failed")
				return fmt.Errorf("file %s: check ingestion log: %w", f, err)
			}
			if exists && !force {
				logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already ingested")
				return nil
			}
			if exists && force {
				logger.L().Warn().Str("file", base).Msg("reprocessing already-ingested file; rows will be appended")
			}

			total, skipped, err := processFile(gctx, f, repo)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertIngestionLog(base, total); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("update ingestion log failed")
				return fmt.Errorf("file %s: upsert ingestion log: %w", f, err)
			}
			logger.L().Info().
				Int("idx", idx+1).Int("total", len(files)).Str("file", base).
				Int("rows", total).Int("skipped", skipped).
				Dur("elapsed", time.Since(start)).Bool("force", force).
				Msg("file done")
			return nil
		})
	}

	return g.Wait()
}

// processFile reads one file, routes it by detected kind, and persists it.
// Returns inserted and skipped row counts.
func processFile(ctx context.Context, path string, repo storage.Repository) (int, int, error) {
	t, err := readTable(path)
	if err != nil {
		return 0, 0, err
	}

	kind := detectKind(t)
	logger.L().Info().Str("file", filepath.Base(path)).Str("kind", kind.String()).Int("rows", len(t.rows)).Msg("file detected")

	switch kind {
	case kindDataPoints:
		return persistDataPoints(ctx, t, repo, defaultBatchSize)
	case kindVehicleSales:
		total, err := persistVehicleSales(ctx, t, repo, defaultBatchSize)
		return total, 0, err
	case kindFMCGSales:
		total, err := persistFMCGSales(ctx, t, repo, defaultBatchSize)
		return total, 0, err
	default:
		return 0, 0, fmt.Errorf("unrecognized file layout (headers: %s)", strings.Join(t.headers, ", "))
	}
}
