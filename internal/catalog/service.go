package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
	"golang.org/x/sync/errgroup"
)

// ErrExerciseNotFound is returned by Get when neither the API nor the local
// list knows the exercise.
var ErrExerciseNotFound = errors.NewSentinel("exercise not found")

const defaultListLimit = 50

// Service resolves exercises, preferring the ExerciseDB API and degrading to
// the built-in list when the API is unconfigured or a request fails. Lookups
// never fail outright because of the API being down.
type Service struct {
	client   *Client
	fallback []fitness.Exercise
	logger   *slog.Logger
}

// NewService builds a catalog service. client may be nil when no API key is
// configured; every lookup then serves from the built-in list.
func NewService(client *Client, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		fallback: fitness.DefaultCatalog(),
		logger:   logger,
	}
}

// List returns a browsable selection of exercises.
func (s *Service) List(ctx context.Context) []fitness.Exercise {
	if s.client == nil {
		return s.fallback
	}
	apis, err := s.client.All(ctx, defaultListLimit)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "exercise API unavailable, serving built-in list",
			errors.SlogError(err))
		return s.fallback
	}
	return normalizeAll(apis)
}

// Search fans out the query across the name, body part, target and equipment
// indexes concurrently and merges the results. A failing index is skipped; an
// empty merge falls back to the built-in list.
func (s *Service) Search(ctx context.Context, query string) []fitness.Exercise {
	query = strings.TrimSpace(strings.ToLower(query))
	if s.client == nil || query == "" {
		return s.searchFallback(query)
	}

	var (
		mu     sync.Mutex
		merged []fitness.Exercise
		seen   = map[string]struct{}{}
	)
	collect := func(apis []apiExercise) {
		mu.Lock()
		defer mu.Unlock()
		for _, ex := range normalizeAll(apis) {
			key := ex.ID
			if key == "" {
				key = strings.ToLower(ex.Name)
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, ex)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	lookups := []func(context.Context, string) ([]apiExercise, error){
		s.client.ByName,
		s.client.ByBodyPart,
		s.client.ByTarget,
		s.client.ByEquipment,
	}
	for _, lookup := range lookups {
		g.Go(func() error {
			apis, err := lookup(gctx, query)
			if err != nil {
				// A miss on one index is expected; the API answers 404 for
				// unknown body parts and equipment.
				s.logger.LogAttrs(gctx, slog.LevelDebug, "exercise index lookup failed",
					slog.String("query", query), errors.SlogError(err))
				return nil
			}
			collect(apis)
			return nil
		})
	}
	_ = g.Wait()

	if len(merged) == 0 {
		return s.searchFallback(query)
	}
	return merged
}

func (s *Service) searchFallback(query string) []fitness.Exercise {
	if query == "" {
		return s.fallback
	}
	var matches []fitness.Exercise
	for _, ex := range s.fallback {
		if strings.Contains(strings.ToLower(ex.Name), query) ||
			strings.Contains(strings.ToLower(ex.BodyPart), query) ||
			strings.Contains(strings.ToLower(ex.Target), query) ||
			strings.Contains(strings.ToLower(ex.Equipment), query) {
			matches = append(matches, ex)
		}
	}
	return matches
}

// Get resolves one exercise by name, exact match first.
func (s *Service) Get(ctx context.Context, name string) (fitness.Exercise, error) {
	for _, ex := range s.fallback {
		if strings.EqualFold(ex.Name, name) {
			return ex, nil
		}
	}
	if s.client != nil {
		apis, err := s.client.ByName(ctx, strings.ToLower(name))
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "exercise API lookup failed",
				slog.String("name", name), errors.SlogError(err))
		}
		for _, ex := range normalizeAll(apis) {
			if strings.EqualFold(ex.Name, name) {
				return ex, nil
			}
		}
		// Fall back to the closest match.
		if len(apis) > 0 {
			return normalize(apis[0]), nil
		}
	}
	return fitness.Exercise{}, errors.Wrap(ErrExerciseNotFound, "lookup exercise", slog.String("name", name))
}

// GetByID resolves one exercise by its catalog ID, checking the built-in list
// before the API. Unlike the name lookups an API failure surfaces as an error
// rather than degrading, since an ID cannot be fuzzily matched.
func (s *Service) GetByID(ctx context.Context, id string) (fitness.Exercise, error) {
	for _, ex := range s.fallback {
		if ex.ID == id {
			return ex, nil
		}
	}
	if s.client == nil {
		return fitness.Exercise{}, errors.Wrap(ErrExerciseNotFound, "lookup exercise by id", slog.String("id", id))
	}
	api, err := s.client.ByID(ctx, id)
	if err != nil {
		return fitness.Exercise{}, errors.Wrap(err, "lookup exercise by id", slog.String("id", id))
	}
	if api.ID == "" {
		return fitness.Exercise{}, errors.Wrap(ErrExerciseNotFound, "lookup exercise by id", slog.String("id", id))
	}
	return normalize(api), nil
}
