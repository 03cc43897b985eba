package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/slangstash/slang-service/internal/cache"
	apperrors "github.com/slangstash/slang-service/internal/errors"
	"github.com/slangstash/slang-service/internal/slang/domain"
	"github.com/slangstash/slang-service/internal/slang/dto"
	"github.com/slangstash/slang-service/pkg/constant"
)

type SlangService struct {
	repo  domain.SlangRepository
	store cache.Cache
}

func NewSlangService(repo domain.SlangRepository, store cache.Cache) *SlangService {
	return &SlangService{repo: repo, store: store}
}

// CanonicalTerm normalizes a term so store rows and cache entries share one
// key regardless of the casing the client used.
func CanonicalTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Lookup serves a slang projection cache-first, falling back to the store and
// repopulating the cache on a miss.
func (s *SlangService) Lookup(ctx context.Context, requestedTerm string) (*dto.SlangOutput, error) {
	key := CanonicalTerm(requestedTerm)

	cached, err := s.store.Get(ctx, key)
	if err == nil {
		var out dto.SlangOutput
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return &out, nil
		}
		log.Printf("warn: corrupt cache entry for %q, falling back to store", key)
	} else if err != cache.ErrCacheMiss {
		return nil, err
	}

	found, err := s.repo.FindByTerm(ctx, key)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrTermNotFound
	}

	out := projection(found)
	s.populateCache(ctx, key, out)

	return out, nil
}

// Contribute inserts a new slang term and populates the cache with its
// projection. The insert is the authoritative action; a failed cache populate
// never fails the contribution.
func (s *SlangService) Contribute(ctx context.Context, input dto.ContributeInput, submitterID, submitterUsername, submitterRole string) (string, error) {
	key := CanonicalTerm(input.Term)

	if _, err := s.store.Get(ctx, key); err == nil {
		return "", apperrors.ErrTermAlreadyExists
	} else if err != cache.ErrCacheMiss {
		return "", err
	}

	exists, err := s.repo.Exists(ctx, key)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperrors.ErrTermAlreadyExists
	}

	now := time.Now()
	slang := &domain.Slang{
		ID:         uuid.New().String(),
		Term:       key,
		Definition: input.Definition,
		Context:    input.Context,
		Origin:     input.Origin,
		Likes:      0,
		UserID:     submitterID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// The unique constraint is the final arbiter under concurrent
	// contributions of the same term.
	if err := s.repo.Create(ctx, slang); err != nil {
		return "", err
	}

	s.populateCache(ctx, key, &dto.SlangOutput{
		Term:        slang.Term,
		Definition:  slang.Definition,
		Context:     slang.Context,
		Origin:      slang.Origin,
		Likes:       0,
		ID:          slang.ID,
		SubmittedBy: submitterUsername,
		IsEnforcer:  submitterRole,
	})

	return slang.ID, nil
}

func (s *SlangService) populateCache(ctx context.Context, key string, out *dto.SlangOutput) {
	payload, err := json.Marshal(out)
	if err != nil {
		log.Printf("warn: failed to marshal cache entry for %q: %v", key, err)
		return
	}
	if err := s.store.Set(ctx, key, string(payload), constant.SlangCacheTTL); err != nil {
		log.Printf("warn: failed to populate cache for %q: %v", key, err)
	}
}

func projection(found *domain.SlangWithSubmitter) *dto.SlangOutput {
	submittedBy := found.SubmitterUsername
	if submittedBy == "" {
		submittedBy = "unknown"
	}

	return &dto.SlangOutput{
		Term:        found.Term,
		Definition:  found.Definition,
		Context:     found.Context,
		Origin:      found.Origin,
		Likes:       found.Likes,
		ID:          found.ID,
		SubmittedBy: submittedBy,
		IsEnforcer:  found.SubmitterRole,
	}
}
