package category

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/insightsource/catalog/internal/platform/apperr"
)

// memoryRepository mirrors the unique indexes of catalog.category in memory.
type memoryRepository struct {
	mu           sync.Mutex
	byID         map[string]*Category
	reportCounts map[string]int
	clock        time.Time
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		byID:         map[string]*Category{},
		reportCounts: map[string]int{},
		clock:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (repository *memoryRepository) tick() time.Time {
	repository.clock = repository.clock.Add(time.Second)
	return repository.clock
}

func (repository *memoryRepository) ListCategories(context.Context) ([]*Category, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	categories := []*Category{}
	for _, category := range repository.byID {
		copied := *category
		categories = append(categories, &copied)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CreatedAt.After(categories[j].CreatedAt)
	})
	return categories, nil
}

func (repository *memoryRepository) GetCategoryBySlug(_ context.Context, slug string) (*Category, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, category := range repository.byID {
		if category.Slug == slug {
			copied := *category
			return &copied, nil
		}
	}
	return nil, apperr.NotFound(resource)
}

func (repository *memoryRepository) CreateCategory(_ context.Context, category *Category) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.collides(category) {
		return apperr.Conflict(resource + " already exists")
	}

	category.CreatedAt = repository.tick()
	category.UpdatedAt = category.CreatedAt
	copied := *category
	repository.byID[category.ID] = &copied
	return nil
}

func (repository *memoryRepository) UpdateCategory(_ context.Context, category *Category) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, found := repository.byID[category.ID]; !found {
		return apperr.NotFound(resource)
	}
	if repository.collides(category) {
		return apperr.Conflict(resource + " already exists")
	}

	category.UpdatedAt = repository.tick()
	copied := *category
	repository.byID[category.ID] = &copied
	return nil
}

func (repository *memoryRepository) DeleteCategory(_ context.Context, id string) (*Category, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	category, found := repository.byID[id]
	if !found {
		return nil, apperr.NotFound(resource)
	}
	delete(repository.byID, id)
	return category, nil
}

func (repository *memoryRepository) CountReports(_ context.Context, id string) (int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	return repository.reportCounts[id], nil
}

func (repository *memoryRepository) collides(candidate *Category) bool {
	for id, existing := range repository.byID {
		if id == candidate.ID {
			continue
		}
		if existing.Name == candidate.Name || existing.Slug == candidate.Slug {
			return true
		}
	}
	return false
}
