// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/report-sealer/internal/adapter"
	"github.com/MKhiriev/report-sealer/internal/crypto"
	"github.com/MKhiriev/report-sealer/internal/logger"
	"github.com/MKhiriev/report-sealer/internal/report"
	"github.com/MKhiriev/report-sealer/internal/store"
	"github.com/MKhiriev/report-sealer/internal/validators"
	"github.com/MKhiriev/report-sealer/internal/workers"
	"github.com/MKhiriev/report-sealer/models"
)

// sealedFileMode keeps sealed files readable by their owner only.
const sealedFileMode os.FileMode = 0o600

type exportService struct {
	source    adapter.ReportSource
	history   store.HistoryRepository
	codec     crypto.Codec
	renderer  *report.Renderer
	validator validators.Validator
	pool      *workers.Pool
	logger    *logger.Logger
}

// NewExportService wires an [ExportService]. history may be nil, in which
// case exports are not recorded. source may be nil for a service that is
// only used for [ExportService.SealFile].
func NewExportService(
	source adapter.ReportSource,
	history store.HistoryRepository,
	codec crypto.Codec,
	renderer *report.Renderer,
	pool *workers.Pool,
	log *logger.Logger,
) ExportService {
	if renderer == nil {
		renderer = report.NewRenderer()
	}
	if pool == nil {
		pool = workers.NewPool(1)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &exportService{
		source:    source,
		history:   history,
		codec:     codec,
		renderer:  renderer,
		validator: validators.NewExportRequestValidator(),
		pool:      pool,
		logger:    log,
	}
}

func (s *exportService) validate(ctx context.Context, req models.ExportRequest) error {
	return s.validator.Validate(ctx, req,
		validators.FieldDocumentIDs,
		validators.FieldPassword,
		validators.FieldConfirmation,
		validators.FieldOutputDir,
	)
}

func (s *exportService) Export(ctx context.Context, req models.ExportRequest) (models.ExportResult, error) {
	if len(req.DocumentIDs) != 1 {
		return models.ExportResult{}, ErrSingleDocumentExpected
	}
	if err := s.validate(ctx, req); err != nil {
		return models.ExportResult{}, err
	}

	res := s.exportOne(ctx, req, strings.TrimSpace(req.DocumentIDs[0]), nil)
	return res, res.Err
}

func (s *exportService) ExportAll(ctx context.Context, req models.ExportRequest) ([]models.ExportResult, error) {
	if len(req.DocumentIDs) == 0 {
		ids, err := s.listAll(ctx)
		if err != nil {
			return nil, err
		}
		req.DocumentIDs = ids
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	claims := newPathClaims()
	results := make([]models.ExportResult, len(req.DocumentIDs))
	jobs := make([]workers.Job, len(req.DocumentIDs))
	for i, id := range req.DocumentIDs {
		id = strings.TrimSpace(id)
		jobs[i] = func(ctx context.Context) error {
			results[i] = s.exportOne(ctx, req, id, claims)
			return results[i].Err
		}
	}

	var failed int
	for i, err := range s.pool.Run(ctx, jobs) {
		if err == nil {
			continue
		}
		failed++
		if results[i].DocumentID == "" {
			// job skipped by a canceled context
			results[i] = models.ExportResult{DocumentID: strings.TrimSpace(req.DocumentIDs[i]), Err: err}
		}
	}

	s.logger.Info().
		Int("documents", len(jobs)).
		Int("failed", failed).
		Int("workers", s.pool.Size()).
		Msg("batch export finished")

	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d", ErrPartialExport, failed, len(jobs))
	}
	return results, nil
}

func (s *exportService) listAll(ctx context.Context) ([]string, error) {
	if s.source == nil {
		return nil, fmt.Errorf("%w: no report source configured", adapter.ErrInvalidSource)
	}

	docs, err := s.source.ListDocuments(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNothingToExport
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// exportOne fetches, renders, seals and writes one document. claims, when
// set, keeps documents of one batch that share a name from overwriting each
// other.
func (s *exportService) exportOne(ctx context.Context, req models.ExportRequest, documentID string, claims *pathClaims) models.ExportResult {
	result := models.ExportResult{DocumentID: documentID}
	log := s.logger.With().Str("document_id", documentID).Logger()

	if s.source == nil {
		result.Err = fmt.Errorf("%w: no report source configured", adapter.ErrInvalidSource)
		return result
	}

	rep, err := s.source.FetchReport(ctx, documentID)
	if err != nil {
		log.Err(err).Str("func", "exportService.exportOne").Msg("fetch failed")
		result.Err = fmt.Errorf("fetch report %s: %w", documentID, err)
		return result
	}

	plaintext, err := s.renderer.Render(rep, req.AnalystName, req.AnalystEmail)
	if err != nil {
		result.Err = fmt.Errorf("render report %s: %w", documentID, err)
		return result
	}
	defer memguard.WipeBytes(plaintext)

	container, err := s.codec.Seal(ctx, plaintext, req.Password)
	if err != nil {
		log.Err(err).Str("func", "exportService.exportOne").Int("size", len(plaintext)).Msg("seal failed")
		result.Err = fmt.Errorf("seal report %s: %w", documentID, err)
		return result
	}

	dir := req.OutputDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, report.ExportFileName(rep.Document.DocumentName))
	if claims != nil {
		path = claims.claim(path, rep.Document.DocumentName, documentID)
	}

	if err = writeFileAtomic(path, container); err != nil {
		log.Err(err).Str("func", "exportService.exportOne").Str("path", path).Msg("write failed")
		result.Err = err
		return result
	}

	result.FilePath = path
	result.Size = int64(len(container))
	s.record(ctx, models.ExportRecord{
		DocumentID:    documentID,
		DocumentName:  rep.Document.DocumentName,
		FilePath:      path,
		ContainerSize: result.Size,
	})

	log.Info().
		Str("path", path).
		Int64("size", result.Size).
		Int("clauses", len(rep.Clauses)).
		Msg("report sealed")

	return result
}

func (s *exportService) SealFile(ctx context.Context, in, out, password string) (models.ExportResult, error) {
	if utf8.RuneCountInString(password) < validators.MinPasswordLength {
		return models.ExportResult{}, validators.ErrPasswordTooShort
	}

	payload, err := os.ReadFile(in)
	if err != nil {
		return models.ExportResult{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	defer memguard.WipeBytes(payload)
	if len(payload) == 0 {
		return models.ExportResult{}, ErrEmptyInputFile
	}

	container, err := s.codec.Seal(ctx, payload, password)
	if err != nil {
		return models.ExportResult{}, fmt.Errorf("seal %s: %w", filepath.Base(in), err)
	}

	if out == "" {
		out = in + crypto.FileExtension
	}
	if err = writeFileAtomic(out, container); err != nil {
		return models.ExportResult{}, err
	}

	size := int64(len(container))
	s.record(ctx, models.ExportRecord{
		DocumentID:    filepath.Base(in),
		DocumentName:  filepath.Base(in),
		FilePath:      out,
		ContainerSize: size,
	})

	return models.ExportResult{DocumentID: filepath.Base(in), FilePath: out, Size: size}, nil
}

// record stores an export in the history. A history failure is logged and
// does not fail the export; the sealed file is already on disk.
func (s *exportService) record(ctx context.Context, rec models.ExportRecord) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Record(ctx, rec); err != nil {
		s.logger.Warn().Err(err).Str("document_id", rec.DocumentID).Msg("export not recorded in history")
	}
}

func (s *exportService) History(ctx context.Context, limit int) ([]models.ExportRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, limit)
}

func (s *exportService) ForgetExport(ctx context.Context, id string) error {
	if s.history == nil {
		return fmt.Errorf("%w: no export history configured", store.ErrRecordNotFound)
	}
	return s.history.Delete(ctx, id)
}

type pathClaims struct {
	mu    sync.Mutex
	taken map[string]struct{}
}

func newPathClaims() *pathClaims {
	return &pathClaims{taken: make(map[string]struct{})}
}

// claim returns path, or a name qualified with the document ID when path
// was already claimed in this batch.
func (c *pathClaims) claim(path, documentName, documentID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.taken[path]; ok {
		short := documentID
		if len(short) > 8 {
			short = short[:8]
		}
		path = filepath.Join(filepath.Dir(path), report.ExportFileName(strings.TrimSuffix(documentName, ".pdf")+"_"+short))
	}
	c.taken[path] = struct{}{}
	return path
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it over path, so a reader never sees a partial container.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".sealer-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(sealedFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}
	return nil
}
