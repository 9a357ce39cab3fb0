package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/scoretracker/internal/common/clock"
	"github.com/KirkDiggler/scoretracker/internal/metrics"
	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/repositories/export"
	"github.com/KirkDiggler/scoretracker/internal/repositories/filehandle"
	"github.com/KirkDiggler/scoretracker/internal/repositories/snapshot"
	"github.com/KirkDiggler/scoretracker/internal/schema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// AutoSaveFileName is suggested when picking the auto-save file
const AutoSaveFileName = export.FilePrefix + ".json"

// maxNotices bounds the notice list
const maxNotices = 20

const (
	msgSetupAutoSave   = "Choose a file to auto-save this game. Until then progress is kept in local storage."
	msgAutoSaveEnabled = "Auto-saving to %s."
	msgFileUnsupported = "Saving to a file is not available here. Progress is kept in local storage."
	msgFileUnavailable = "Lost access to %s. Auto-save is off until you choose a file again."
	msgStorageCleared  = "Local storage was full. Other saved data was removed to keep this game."
	msgSaveFailed      = "Unable to save game progress. Your game will continue but may be lost when the tracker exits."
	msgLoadFailed      = "The saved game could not be read and was discarded."
	msgExportFailed    = "Export failed: %v"
)

// Config holds configuration for the persistence service
type Config struct {
	Snapshots snapshot.Repository
	Files     *filehandle.Manager
	Exporter  *export.Exporter

	Clock   clock.Clock
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Tracer  trace.Tracer

	// OnNotice is called for every new notice, outside any lock
	OnNotice func(Notice)
}

type service struct {
	snapshots snapshot.Repository
	files     *filehandle.Manager
	exporter  *export.Exporter
	clock     clock.Clock
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	onNotice  func(Notice)

	// writeMu serializes every storage write
	writeMu sync.Mutex

	mu             sync.Mutex
	pending        *models.GameState
	epoch          uint64
	queued         uint64
	written        uint64
	progress       chan struct{}
	wake           chan struct{}
	notices        []Notice
	setupPrompted  bool
	needsFileSetup bool
	lastError      string
}

// New creates a persistence service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Snapshots == nil {
		return nil, errors.New("snapshot repository cannot be nil")
	}
	if cfg.Files == nil {
		return nil, errors.New("file manager cannot be nil")
	}
	if cfg.Exporter == nil {
		return nil, errors.New("exporter cannot be nil")
	}

	s := &service{
		snapshots: cfg.Snapshots,
		files:     cfg.Files,
		exporter:  cfg.Exporter,
		clock:     cfg.Clock,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		tracer:    cfg.Tracer,
		onNotice:  cfg.OnNotice,
		progress:  make(chan struct{}),
		wake:      make(chan struct{}, 1),
		notices:   []Notice{},
	}
	if s.clock == nil {
		s.clock = &clock.DefaultClock{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("github.com/KirkDiggler/scoretracker/internal/services/persistence")
	}
	return s, nil
}

// Load reads the chunked tier. A record that cannot be decoded is deleted
// and the empty state returned; storage errors are reported, not returned.
func (s *service) Load(ctx context.Context) (*LoadOutput, error) {
	ctx, span := s.tracer.Start(ctx, "PersistenceService.Load")
	defer span.End()

	empty := &LoadOutput{State: models.NewGameState()}

	state, err := s.snapshots.LoadGame(ctx, &snapshot.LoadGameInput{})
	switch {
	case err == nil:
	case errors.Is(err, snapshot.ErrGameNotFound):
		s.metrics.RecordLoad(metrics.TierChunked, metrics.OutcomeSkipped)
		return empty, nil
	case errors.Is(err, schema.ErrCorruptDocument), errors.Is(err, schema.ErrUnsupportedVersion):
		span.RecordError(err)
		s.metrics.RecordLoad(metrics.TierChunked, metrics.OutcomeFailure)
		s.logger.WarnContext(ctx, "Discarding unreadable saved game", slog.Any("error", err))

		if delErr := s.snapshots.DeleteGame(ctx, &snapshot.DeleteGameInput{}); delErr != nil {
			s.logger.ErrorContext(ctx, "Failed to delete unreadable saved game", slog.Any("error", delErr))
		}
		s.notify(Notice{Level: NoticeLevelWarning, Kind: NoticeLoadFailed, Message: msgLoadFailed})
		return empty, nil
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		s.metrics.RecordLoad(metrics.TierChunked, metrics.OutcomeFailure)
		s.logger.ErrorContext(ctx, "Failed to load saved game", slog.Any("error", err))
		s.notify(Notice{Level: NoticeLevelWarning, Kind: NoticeLoadFailed, Message: msgLoadFailed})
		return empty, nil
	}

	s.metrics.RecordLoad(metrics.TierChunked, metrics.OutcomeSuccess)
	span.SetAttributes(attribute.Int("game.players", len(state.Players)))

	out := &LoadOutput{State: *state, Found: true}
	if !s.files.HasHandle() {
		out.NeedsFileSetup = true

		s.mu.Lock()
		s.needsFileSetup = true
		s.setupPrompted = true
		s.mu.Unlock()

		s.notify(Notice{Level: NoticeLevelInfo, Kind: NoticeSetupAutoSave, Message: msgSetupAutoSave})
	}

	s.logger.InfoContext(ctx, "Restored saved game",
		slog.Int("players", len(state.Players)),
		slog.Bool("game_ended", state.GameEnded),
	)
	return out, nil
}

// Notify replaces any pending state with this one. States of games that have
// not started are never saved.
func (s *service) Notify(state models.GameState) {
	if !state.GameStarted {
		return
	}

	snap := state.Clone()

	s.mu.Lock()
	s.pending = &snap
	s.queued++
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run is the single save worker
func (s *service) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
			s.drain(ctx)
		}
	}
}

func (s *service) drain(ctx context.Context) {
	for {
		s.mu.Lock()
		state := s.pending
		version := s.queued
		epoch := s.epoch
		s.pending = nil
		s.mu.Unlock()

		if state == nil {
			return
		}

		s.save(ctx, *state, epoch)
		s.markWritten(version)
	}
}

// markWritten records progress and wakes Flush callers
func (s *service) markWritten(version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version > s.written {
		s.written = version
	}
	close(s.progress)
	s.progress = make(chan struct{})
}

// Flush blocks until the worker has written everything queued so far
func (s *service) Flush(ctx context.Context) error {
	s.mu.Lock()
	target := s.queued
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if s.written >= target {
			s.mu.Unlock()
			return nil
		}
		progress := s.progress
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-progress:
		}
	}
}

// save writes to the file tier while a handle is held and to the chunked
// tier otherwise, or when the file write fails. States queued before the
// last Purge are dropped.
func (s *service) save(ctx context.Context, state models.GameState, epoch uint64) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	stale := epoch != s.epoch
	s.mu.Unlock()
	if stale {
		return
	}

	ctx, span := s.tracer.Start(ctx, "PersistenceService.Save")
	defer span.End()

	if s.files.HasHandle() {
		span.SetAttributes(attribute.String("storage.tier", metrics.TierFile))
		err := s.saveFile(ctx, state)
		if err == nil {
			s.clearLastError()
			return
		}
		span.RecordError(err)
	}

	span.SetAttributes(attribute.String("storage.tier", metrics.TierChunked))
	if err := s.saveChunked(ctx, state); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return
	}
	s.clearLastError()

	s.mu.Lock()
	prompt := !s.setupPrompted && !s.files.HasHandle()
	s.setupPrompted = true
	s.mu.Unlock()

	if prompt {
		s.notify(Notice{Level: NoticeLevelInfo, Kind: NoticeSetupAutoSave, Message: msgSetupAutoSave})
	}
}

func (s *service) saveFile(ctx context.Context, state models.GameState) error {
	start := s.clock.Now()
	name := s.files.Name()

	data, err := schema.Encode(state)
	if err != nil {
		s.metrics.RecordSave(metrics.TierFile, metrics.OutcomeFailure, 0, 0)
		return err
	}

	if err := s.files.Write(ctx, data); err != nil {
		s.metrics.RecordSave(metrics.TierFile, metrics.OutcomeFailure, 0, 0)

		if errors.Is(err, filehandle.ErrPermissionDenied) {
			s.logger.WarnContext(ctx, "Lost permission to auto-save file", slog.String("file", name))

			s.mu.Lock()
			s.needsFileSetup = true
			s.mu.Unlock()

			s.notify(Notice{
				Level:   NoticeLevelWarning,
				Kind:    NoticeFileUnavailable,
				Message: fmt.Sprintf(msgFileUnavailable, name),
			})
			return err
		}

		s.logger.ErrorContext(ctx, "Failed to write auto-save file",
			slog.String("file", name),
			slog.Any("error", err),
		)
		return err
	}

	s.metrics.RecordSave(metrics.TierFile, metrics.OutcomeSuccess, s.clock.Now().Sub(start), len(data))
	return nil
}

func (s *service) saveChunked(ctx context.Context, state models.GameState) error {
	start := s.clock.Now()

	out, err := s.snapshots.SaveGame(ctx, &snapshot.SaveGameInput{State: &state})
	if err != nil {
		s.metrics.RecordSave(metrics.TierChunked, metrics.OutcomeFailure, 0, 0)
		s.logger.ErrorContext(ctx, "Game state could not be saved to local storage", slog.Any("error", err))

		s.mu.Lock()
		s.lastError = err.Error()
		s.mu.Unlock()

		s.notify(Notice{Level: NoticeLevelError, Kind: NoticeSaveFailed, Message: msgSaveFailed})
		return err
	}

	s.metrics.RecordSave(metrics.TierChunked, metrics.OutcomeSuccess, s.clock.Now().Sub(start), out.Bytes)

	if out.Recovery != snapshot.RecoveryNone {
		s.metrics.RecordRecovery(out.Recovery.String())
		s.logger.WarnContext(ctx, "Local storage quota exceeded, recovered by cleanup",
			slog.String("recovery", out.Recovery.String()),
			slog.Int("bytes", out.Bytes),
		)
	}
	if out.Recovery == snapshot.RecoveryClearedOrigin {
		s.notify(Notice{Level: NoticeLevelWarning, Kind: NoticeStorageCleared, Message: msgStorageCleared})
	}
	return nil
}

// SetupAutoSave acquires a file and writes state into it right away. A
// declined picker changes nothing; a missing picker is reported as a notice.
func (s *service) SetupAutoSave(ctx context.Context, state models.GameState) (*SetupAutoSaveOutput, error) {
	ctx, span := s.tracer.Start(ctx, "PersistenceService.SetupAutoSave")
	defer span.End()

	name, err := s.files.Acquire(ctx, AutoSaveFileName)
	switch {
	case errors.Is(err, filehandle.ErrDeclined):
		s.logger.InfoContext(ctx, "Auto-save file selection declined")
		return &SetupAutoSaveOutput{}, nil
	case errors.Is(err, filehandle.ErrUnsupported):
		s.notify(Notice{Level: NoticeLevelInfo, Kind: NoticeFileUnsupported, Message: msgFileUnsupported})
		return &SetupAutoSaveOutput{}, nil
	case err != nil:
		span.RecordError(err)
		return nil, fmt.Errorf("failed to choose auto-save file: %w", err)
	}

	s.writeMu.Lock()
	err = s.saveFile(ctx, state)
	s.writeMu.Unlock()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to write auto-save file: %w", err)
	}

	s.mu.Lock()
	s.needsFileSetup = false
	s.setupPrompted = true
	s.lastError = ""
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Auto-save enabled", slog.String("file", name))
	s.notify(Notice{
		Level:   NoticeLevelInfo,
		Kind:    NoticeAutoSaveEnabled,
		Message: fmt.Sprintf(msgAutoSaveEnabled, name),
	})
	return &SetupAutoSaveOutput{Enabled: true, FileName: name}, nil
}

// Purge drops pending saves, deletes the chunked copy and overwrites the
// auto-save file with the empty state
func (s *service) Purge(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "PersistenceService.Purge")
	defer span.End()

	s.mu.Lock()
	s.epoch++
	s.pending = nil
	s.written = s.queued
	close(s.progress)
	s.progress = make(chan struct{})
	s.mu.Unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var errs []error
	if err := s.snapshots.DeleteGame(ctx, &snapshot.DeleteGameInput{}); err != nil {
		errs = append(errs, err)
	}

	if s.files.HasHandle() {
		if err := s.saveFile(ctx, models.NewGameState()); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "Failed to purge saved game", slog.Any("error", err))
		return err
	}
	return nil
}

// Export hands a full copy of state to the exporter
func (s *service) Export(ctx context.Context, state models.GameState) (*ExportOutput, error) {
	ctx, span := s.tracer.Start(ctx, "PersistenceService.Export")
	defer span.End()

	start := s.clock.Now()
	name, err := s.exporter.Export(ctx, state)
	if err != nil {
		span.RecordError(err)
		s.metrics.RecordSave(metrics.TierExport, metrics.OutcomeFailure, 0, 0)
		s.logger.ErrorContext(ctx, "Export failed", slog.Any("error", err))
		s.notify(Notice{Level: NoticeLevelError, Kind: NoticeSaveFailed, Message: fmt.Sprintf(msgExportFailed, err)})
		return nil, err
	}

	s.metrics.RecordSave(metrics.TierExport, metrics.OutcomeSuccess, s.clock.Now().Sub(start), 0)
	s.logger.InfoContext(ctx, "Exported game", slog.String("file", name))
	return &ExportOutput{FileName: name}, nil
}

// Import reads and migrates a user-chosen file. Picker outcomes
// (filehandle.ErrDeclined, filehandle.ErrUnsupported) are returned as is.
func (s *service) Import(ctx context.Context) (*models.GameState, error) {
	ctx, span := s.tracer.Start(ctx, "PersistenceService.Import")
	defer span.End()

	data, err := s.files.Read(ctx)
	if err != nil {
		if !errors.Is(err, filehandle.ErrDeclined) {
			s.metrics.RecordLoad(metrics.TierImport, metrics.OutcomeFailure)
			span.RecordError(err)
		}
		return nil, err
	}

	state, err := schema.Decode(data)
	if err != nil {
		s.metrics.RecordLoad(metrics.TierImport, metrics.OutcomeFailure)
		span.RecordError(err)
		s.logger.WarnContext(ctx, "Rejected imported file", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	s.metrics.RecordLoad(metrics.TierImport, metrics.OutcomeSuccess)
	return state, nil
}

func (s *service) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notice{}, s.notices...)
}

func (s *service) DismissNotices() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = []Notice{}
}

func (s *service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		AutoSave:       s.files.HasHandle(),
		FileName:       s.files.Name(),
		NeedsFileSetup: s.needsFileSetup,
		LastError:      s.lastError,
	}
}

func (s *service) clearLastError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

func (s *service) notify(n Notice) {
	s.mu.Lock()
	s.notices = append(s.notices, n)
	if len(s.notices) > maxNotices {
		s.notices = append([]Notice{}, s.notices[len(s.notices)-maxNotices:]...)
	}
	onNotice := s.onNotice
	s.mu.Unlock()

	if onNotice != nil {
		onNotice(n)
	}
}
