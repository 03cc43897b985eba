package domain

//go:generate mockgen -destination=../../mocks/mock_slang_repository.go -package=mocks github.com/slangstash/slang-service/internal/slang/domain SlangRepository

import "context"

type SlangRepository interface {
	// FindByTerm returns the slang row joined with its submitter, or nil when
	// the term does not exist.
	FindByTerm(ctx context.Context, term string) (*SlangWithSubmitter, error)
	Exists(ctx context.Context, term string) (bool, error)
	Create(ctx context.Context, slang *Slang) error
}
