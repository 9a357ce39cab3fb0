package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/scoretracker/internal/common/clock"
	"github.com/KirkDiggler/scoretracker/internal/models"
	"github.com/KirkDiggler/scoretracker/internal/repositories/kvstore"
)

const (
	// DefaultKeyPrefix namespaces every key this repository writes
	DefaultKeyPrefix = "game-score-tracker:"

	// DefaultChunkSize is the largest value written under a single key
	DefaultChunkSize = 512 * 1024

	gameKey       = "game"
	metaKey       = "game:meta"
	chunkKeyInfix = "game:chunk:"
)

var (
	// ErrGameNotFound is returned when no complete game is stored
	ErrGameNotFound = errors.New("game not found")

	// ErrSaveUnrecoverable is returned when a save still exceeds quota after
	// every recovery step
	ErrSaveUnrecoverable = errors.New("game could not be saved after storage cleanup")
)

// Config holds configuration for the chunked repository
type Config struct {
	Store kvstore.Store

	// KeyPrefix defaults to DefaultKeyPrefix
	KeyPrefix string

	// ChunkSize defaults to DefaultChunkSize
	ChunkSize int

	Clock clock.Clock
}

type repository struct {
	store     kvstore.Store
	prefix    string
	chunkSize int
	clock     clock.Clock
}

// New creates a repository that stores the game in a key/value store
func New(cfg *Config) (*repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Store == nil {
		return nil, errors.New("store cannot be nil")
	}

	r := &repository{
		store:     cfg.Store,
		prefix:    cfg.KeyPrefix,
		chunkSize: cfg.ChunkSize,
		clock:     cfg.Clock,
	}
	if r.prefix == "" {
		r.prefix = DefaultKeyPrefix
	}
	if r.chunkSize <= 0 {
		r.chunkSize = DefaultChunkSize
	}
	if r.clock == nil {
		r.clock = &clock.DefaultClock{}
	}
	return r, nil
}

// SaveGame writes the compact form of the game. When the store is over
// quota it deletes this app's keys and retries, then clears the whole
// origin and retries, and only then gives up.
func (r *repository) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	if input == nil || input.State == nil {
		return nil, errors.New("input and state cannot be nil")
	}

	data, err := json.Marshal(compact(*input.State))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game: %w", err)
	}

	chunks := split(string(data), r.chunkSize)
	output := &SaveGameOutput{Bytes: len(data)}
	if len(chunks) > 1 {
		output.Chunks = len(chunks)
	}

	err = r.write(ctx, chunks, len(data))
	if !errors.Is(err, kvstore.ErrQuotaExceeded) {
		if err != nil {
			return nil, err
		}
		return output, nil
	}

	// Step one: drop everything under our prefix
	own, err := r.store.Keys(ctx, r.prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	if err := r.store.Delete(ctx, own...); err != nil {
		return nil, fmt.Errorf("failed to delete keys: %w", err)
	}
	output.Recovery = RecoveryDeletedOwnKeys

	err = r.write(ctx, chunks, len(data))
	if !errors.Is(err, kvstore.ErrQuotaExceeded) {
		if err != nil {
			return nil, err
		}
		return output, nil
	}

	// Step two: clear the whole origin
	if err := r.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear storage: %w", err)
	}
	output.Recovery = RecoveryClearedOrigin

	err = r.write(ctx, chunks, len(data))
	if errors.Is(err, kvstore.ErrQuotaExceeded) {
		return nil, fmt.Errorf("%w: %d bytes", ErrSaveUnrecoverable, len(data))
	}
	if err != nil {
		return nil, err
	}
	return output, nil
}

// LoadGame reads the chunked layout when its meta key exists, otherwise the
// single key
func (r *repository) LoadGame(ctx context.Context, input *LoadGameInput) (*models.GameState, error) {
	data, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := decodeCompact([]byte(data))
	if err != nil {
		return nil, err
	}

	state := expand(doc)
	return &state, nil
}

// DeleteGame removes the single key, the meta key and every chunk
func (r *repository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	keys, err := r.store.Keys(ctx, r.key(chunkKeyInfix))
	if err != nil {
		return fmt.Errorf("failed to list chunk keys: %w", err)
	}
	keys = append(keys, r.key(gameKey), r.key(metaKey))

	if err := r.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

func (r *repository) write(ctx context.Context, chunks []string, size int) error {
	if len(chunks) == 1 {
		if err := r.store.Set(ctx, r.key(gameKey), chunks[0]); err != nil {
			return r.wrapWrite(err)
		}
		return r.removeStaleChunks(ctx, 0, true)
	}

	for i, chunk := range chunks {
		if err := r.store.Set(ctx, r.chunkKey(i), chunk); err != nil {
			return r.wrapWrite(err)
		}
	}

	metaJSON, err := json.Marshal(meta{
		TotalChunks: len(chunks),
		Timestamp:   clock.UnixMilli(r.clock),
		DataSize:    size,
		Version:     1,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal chunk meta: %w", err)
	}
	if err := r.store.Set(ctx, r.key(metaKey), string(metaJSON)); err != nil {
		return r.wrapWrite(err)
	}

	if err := r.store.Delete(ctx, r.key(gameKey)); err != nil {
		return fmt.Errorf("failed to delete single-key game: %w", err)
	}
	return r.removeStaleChunks(ctx, len(chunks), false)
}

// removeStaleChunks deletes chunks numbered keep and above, and the meta key
// when the game now lives under the single key
func (r *repository) removeStaleChunks(ctx context.Context, keep int, withMeta bool) error {
	keys, err := r.store.Keys(ctx, r.key(chunkKeyInfix))
	if err != nil {
		return fmt.Errorf("failed to list chunk keys: %w", err)
	}

	stale := []string{}
	for _, k := range keys {
		n, err := strconv.Atoi(strings.TrimPrefix(k, r.key(chunkKeyInfix)))
		if err != nil || n >= keep {
			stale = append(stale, k)
		}
	}
	if withMeta {
		stale = append(stale, r.key(metaKey))
	}

	if err := r.store.Delete(ctx, stale...); err != nil {
		return fmt.Errorf("failed to delete stale chunks: %w", err)
	}
	return nil
}

func (r *repository) read(ctx context.Context) (string, error) {
	metaJSON, err := r.store.Get(ctx, r.key(metaKey))
	if errors.Is(err, kvstore.ErrNotFound) {
		data, err := r.store.Get(ctx, r.key(gameKey))
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", ErrGameNotFound
		}
		if err != nil {
			return "", fmt.Errorf("failed to get game: %w", err)
		}
		return data, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get chunk meta: %w", err)
	}

	var m meta
	if err := json.Unmarshal([]byte(metaJSON), &m); err != nil || m.TotalChunks <= 0 {
		return "", ErrGameNotFound
	}

	var sb strings.Builder
	sb.Grow(m.DataSize)
	for i := 0; i < m.TotalChunks; i++ {
		chunk, err := r.store.Get(ctx, r.chunkKey(i))
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", fmt.Errorf("%w: missing chunk %d of %d", ErrGameNotFound, i, m.TotalChunks)
		}
		if err != nil {
			return "", fmt.Errorf("failed to get chunk %d: %w", i, err)
		}
		sb.WriteString(chunk)
	}
	return sb.String(), nil
}

func (r *repository) wrapWrite(err error) error {
	if errors.Is(err, kvstore.ErrQuotaExceeded) {
		return err
	}
	return fmt.Errorf("failed to write game: %w", err)
}

func (r *repository) key(name string) string {
	return r.prefix + name
}

func (r *repository) chunkKey(n int) string {
	return r.key(chunkKeyInfix + strconv.Itoa(n))
}

// split cuts data into pieces of at most size bytes without breaking a
// UTF-8 sequence
func split(data string, size int) []string {
	if len(data) <= size {
		return []string{data}
	}

	var chunks []string
	for len(data) > 0 {
		end := size
		if end >= len(data) {
			chunks = append(chunks, data)
			break
		}
		for end > 0 && !utf8.RuneStart(data[end]) {
			end--
		}
		if end == 0 {
			end = size
		}
		chunks = append(chunks, data[:end])
		data = data[end:]
	}
	return chunks
}
