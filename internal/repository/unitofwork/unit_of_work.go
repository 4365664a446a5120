package unitofwork

import (
	"context"

	"fit-buddy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	DictionaryRepository() contract.DictionaryRepository
	ProgramRepository() contract.ProgramRepository
	SessionRepository() contract.SessionRepository
	KnowledgeItemRepository() contract.KnowledgeItemRepository
}
