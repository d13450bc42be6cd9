package categories

import "context"

// VideoCategoryService manages video categories.
type VideoCategoryService interface {
	Create(ctx context.Context, input *CategoryInput) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, categoryID string) (*Category, error)
	Update(ctx context.Context, categoryID string, input *CategoryInput) (*Category, error)

	// DeleteByID fails with domain.ErrConflict while videos reference the category.
	DeleteByID(ctx context.Context, categoryID string) error
}

// CategoryRepository defines the interface for Category-related operations
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, categoryID string) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	UpdateByID(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, categoryID string) error
	CountVideos(ctx context.Context, categoryID string) (int64, error)
}
