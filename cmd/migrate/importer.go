package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/padraicbc/runlog/models"
	"github.com/padraicbc/runlog/validate"
)

const batchSize = 500

type creator interface {
	Create(ctx context.Context, p models.RunPatch) (*models.Run, error)
}

// importer feeds loosely typed records through the same validation the API
// applies, so imported runs obey every run invariant. Invalid records are
// skipped and counted; storage failures stop the import.
type importer struct {
	runs     creator
	log      *zap.Logger
	imported int
	skipped  int
}

func newImporter(runs creator, log *zap.Logger) *importer {
	return &importer{runs: runs, log: log}
}

// add imports one record. src identifies it in logs and errors. Any runid
// is dropped; imported runs get fresh ids.
func (im *importer) add(ctx context.Context, src string, rec map[string]any) error {
	delete(rec, "runid")
	normalize(rec)

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", src, err)
	}

	patch, err := validate.ParseAndValidate(raw, false)
	if err != nil {
		im.skipped++
		im.log.Warn("skipping invalid run", zap.String("source", src), zap.Error(err))
		return nil
	}

	if _, err := im.runs.Create(ctx, patch); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	im.imported++
	if im.imported%batchSize == 0 {
		im.log.Info("import progress", zap.Int("imported", im.imported), zap.Int("skipped", im.skipped))
	}
	return nil
}

func (im *importer) done(what string) {
	im.log.Info(what+" complete", zap.Int("imported", im.imported), zap.Int("skipped", im.skipped))
}

// normalize rewrites driver and decoder values into their JSON payload form.
func normalize(rec map[string]any) {
	for k, v := range rec {
		switch t := v.(type) {
		case time.Time:
			rec[k] = models.DateOf(t).String()
		case []byte:
			rec[k] = string(t)
		}
	}
}
