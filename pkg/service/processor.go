package service

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/yurifrl/nfesales/pkg/config"
	"github.com/yurifrl/nfesales/pkg/document"
	"github.com/yurifrl/nfesales/pkg/extractor"
	"github.com/yurifrl/nfesales/pkg/models"
)

// Session is the caller-owned accumulator that survives across load
// operations: the record store, the per-day counts, and the flat date list
// all grow for the life of the session and are only read by the display
// layer.
type Session struct {
	Records *models.Store
	Days    *models.DayCounter
	Dates   []string
}

func NewSession() *Session {
	return &Session{
		Records: models.NewStore(),
		Days:    models.NewDayCounter(),
	}
}

// FileError ties a failing input file to its cause for user display.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return filepath.Base(e.Path) + ": " + e.Err.Error()
}

func (e FileError) Unwrap() error {
	return e.Err
}

// LoadResult reports one multi-file load operation: how many items the
// operation extracted and which files failed. Failures never abort the
// operation; records accumulated before a failure are kept.
type LoadResult struct {
	Total    int
	Failures []FileError
}

type Processor struct {
	logger    *log.Logger
	extractor *extractor.Extractor
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		logger:    logger,
		extractor: extractor.New(logger).WithFallback(cfg.FallbackProduct),
	}
}

// LoadFiles runs one load operation over the given paths, appending every
// successfully extracted record to the session. Files with unrecognized
// extensions are ignored silently; unreadable, malformed, or schema-broken
// files fail individually and processing continues with the rest.
func (p *Processor) LoadFiles(session *Session, paths []string) *LoadResult {
	result := &LoadResult{}

	for _, path := range paths {
		res, err := p.loadFile(path)
		if err != nil {
			p.logger.Error("failed to load file", "file", filepath.Base(path), "error", err)
			result.Failures = append(result.Failures, FileError{Path: path, Err: err})
			continue
		}
		if res == nil {
			continue
		}

		session.Records.Append(res.Records...)
		session.Days.Merge(res.PerDay)
		session.Dates = append(session.Dates, res.Dates...)
		result.Total += res.Total()

		p.logger.Info("loaded file", "file", filepath.Base(path), "items", res.Total(), "skipped", res.Skipped)
	}

	return result
}

// loadFile returns (nil, nil) for extensions the loader does not recognize.
func (p *Processor) loadFile(path string) (*extractor.Result, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xml" && ext != ".json" {
		p.logger.Debug("ignoring file with unrecognized extension", "file", path)
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	var doc document.Document
	switch ext {
	case ".xml":
		defer p.cleanupArtifact(path)
		doc, err = document.ParseXML(data)
	case ".json":
		doc, err = document.ParseJSON(data)
	}
	if err != nil {
		return nil, errors.Wrap(err, "parsing document")
	}

	res, err := p.extractor.Extract(doc)
	if err != nil {
		return nil, errors.Wrap(err, "extracting records")
	}
	return res, nil
}

// cleanupArtifact removes the sibling .json file an upstream converter may
// have left next to a markup input. Contract: strictly best-effort, failure
// is always ignored and never reported.
func (p *Processor) cleanupArtifact(xmlPath string) {
	artifact := strings.TrimSuffix(xmlPath, filepath.Ext(xmlPath)) + ".json"
	_ = os.Remove(artifact)
}
