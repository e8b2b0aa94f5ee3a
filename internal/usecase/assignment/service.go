package assignment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/task-assigner/errors"
	"github.com/johnquangdev/task-assigner/internal/domain/entities"
	"github.com/johnquangdev/task-assigner/internal/usecase/extraction"
	"github.com/johnquangdev/task-assigner/pkg/config"
)

// Transcriber converts a recording URL into transcript text. It is an
// external collaborator; its failures are surfaced unmodified.
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (string, error)
}

// ResultCache stores marshaled result documents keyed by input hash.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// ResultStore archives one result document per extraction run.
type ResultStore interface {
	SaveResult(ctx context.Context, document []byte) (string, error)
}

// Service defines task assignment orchestration methods
type Service interface {
	ProcessTranscript(ctx context.Context, transcript string, roster []entities.TeamMember) (*entities.Result, error)
	ProcessRecording(ctx context.Context, audioURL string, roster []entities.TeamMember) (*entities.Result, error)
}

type assignmentService struct {
	engine      *extraction.Engine
	transcriber Transcriber
	cache       ResultCache
	store       ResultStore
	cfg         *config.Config
	logger      *zap.Logger
}

// NewService constructs the assignment service. transcriber, cache and
// store may each be nil; the corresponding step is skipped.
func NewService(
	engine *extraction.Engine,
	transcriber Transcriber,
	cache ResultCache,
	store ResultStore,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &assignmentService{
		engine:      engine,
		transcriber: transcriber,
		cache:       cache,
		store:       store,
		cfg:         cfg,
		logger:      logger,
	}
}

// ProcessTranscript runs extraction for one transcript and roster,
// consulting the result cache first and archiving the document after.
func (s *assignmentService) ProcessTranscript(ctx context.Context, transcript string, roster []entities.TeamMember) (*entities.Result, error) {
	key := cacheKey(transcript, roster)

	if s.cache != nil {
		document, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("result cache lookup failed", zap.Error(err))
			}
		} else if hit {
			var result entities.Result
			if err := json.Unmarshal(document, &result); err == nil {
				if s.logger != nil {
					s.logger.Debug("result cache hit", zap.String("key", key))
				}
				return &result, nil
			}
		}
	}

	result, err := s.engine.Extract(transcript, roster)
	if err != nil {
		return nil, apperrors.ErrInvalidRoster(err)
	}

	if s.logger != nil {
		s.logger.Info("extraction completed",
			zap.Int("tasks", len(result.Tasks)),
			zap.Int("unassigned_tasks", len(result.UnassignedTasks)),
		)
	}

	document, err := json.Marshal(result)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, document, s.resultTTL()); err != nil && s.logger != nil {
			s.logger.Warn("result cache write failed", zap.Error(err))
		}
	}

	if s.store != nil {
		objectName, err := s.store.SaveResult(ctx, document)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("result archiving failed", zap.Error(err))
			}
		} else if s.logger != nil {
			s.logger.Info("result document archived", zap.String("object", objectName))
		}
	}

	return result, nil
}

// ProcessRecording transcribes an audio URL and then runs extraction on
// the transcript. Transcription is retried with exponential backoff.
func (s *assignmentService) ProcessRecording(ctx context.Context, audioURL string, roster []entities.TeamMember) (*entities.Result, error) {
	if audioURL == "" {
		return nil, apperrors.ErrMissingAudioURL()
	}
	if s.transcriber == nil {
		return nil, apperrors.ErrTranscriberUnconfigured()
	}

	var transcript string
	transcribeFn := func() error {
		text, err := s.transcriber.Transcribe(ctx, audioURL)
		if err != nil {
			return err
		}
		transcript = text
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = s.pollTimeout()
	if err := backoff.Retry(transcribeFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, apperrors.ErrTranscriptionFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("transcription completed",
			zap.String("audio_url", audioURL),
			zap.Int("transcript_chars", len(transcript)),
		)
	}

	return s.ProcessTranscript(ctx, transcript, roster)
}

func (s *assignmentService) resultTTL() time.Duration {
	if s.cfg != nil && s.cfg.Redis.ResultTTL > 0 {
		return s.cfg.Redis.ResultTTL
	}
	return 24 * time.Hour
}

func (s *assignmentService) pollTimeout() time.Duration {
	if s.cfg != nil && s.cfg.Assembly.PollTimeout > 0 {
		return s.cfg.Assembly.PollTimeout
	}
	return 5 * time.Minute
}

// cacheKey hashes the transcript together with the roster so two runs
// with identical inputs share a cache entry.
func cacheKey(transcript string, roster []entities.TeamMember) string {
	h := sha256.New()
	h.Write([]byte(transcript))
	for _, m := range roster {
		h.Write([]byte{0})
		h.Write([]byte(m.Name))
		h.Write([]byte{0})
		h.Write([]byte(m.Role))
		h.Write([]byte{0})
		h.Write([]byte(m.Skills))
	}
	return "assignment:" + hex.EncodeToString(h.Sum(nil))
}
