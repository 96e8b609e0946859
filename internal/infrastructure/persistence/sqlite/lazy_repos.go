package sqlite

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/dumbed/internal/application/port"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/domain/repository"
)

// LazyLayoutStateRepository opens the database on the first repository call,
// so commands that never read or write layouts do not pay for it.
type LazyLayoutStateRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutStateRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutStateRepository creates a lazy-loading layout state repository.
func NewLazyLayoutStateRepository(provider port.DatabaseProvider) repository.LayoutStateRepository {
	return &LazyLayoutStateRepository{provider: provider}
}

func (r *LazyLayoutStateRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = fmt.Errorf("layout store %s: %w", r.provider.Path(), err)
			return
		}
		r.repo = NewLayoutStateRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutStateRepository) Save(ctx context.Context, state *entity.LayoutState) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, state)
}

func (r *LazyLayoutStateRepository) Get(ctx context.Context, name string) (*entity.LayoutState, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, name)
}

func (r *LazyLayoutStateRepository) List(ctx context.Context) ([]entity.LayoutSummary, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutStateRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}

var _ repository.LayoutStateRepository = (*LazyLayoutStateRepository)(nil)
var _ port.DatabaseProvider = (*LazyDB)(nil)
