package postgres

import (
	"context"
	"fmt"

	"cityportal/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewTwinCityRepository creates a new twin-city repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTwinCityRepository() repository.TwinCityRepository {
	return NewTwinCityRepository(f.tx)
}

// NewDocumentRepository creates a new document repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDocumentRepository() repository.DocumentRepository {
	return NewDocumentRepository(f.tx)
}

// NewGalleryRepository creates a new gallery repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewGalleryRepository() repository.GalleryRepository {
	return NewGalleryRepository(f.tx)
}

// NewCollaborationRepository creates a new collaboration repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewCollaborationRepository() repository.CollaborationRepository {
	return NewCollaborationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			return fmt.Errorf("transaction failed: %w (rollback also failed: %v)", err, rollbackErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
