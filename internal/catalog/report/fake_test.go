package report

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/insightsource/catalog/internal/catalog/category"
	"github.com/insightsource/catalog/internal/platform/apperr"
)

type memoryCategories map[string]*category.Category

func (categories memoryCategories) GetCategoryBySlug(_ context.Context, slug string) (*category.Category, error) {
	if found, ok := categories[slug]; ok {
		return found, nil
	}
	return nil, apperr.NotFound("Category")
}

// memoryRepository evaluates [Query] the way the SQL predicate does.
type memoryRepository struct {
	mu     sync.Mutex
	byID   map[string]*Report
	clock  time.Time
	lookup memoryCategories
}

func newMemoryRepository(lookup memoryCategories) *memoryRepository {
	return &memoryRepository{
		byID:   map[string]*Report{},
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		lookup: lookup,
	}
}

func (repository *memoryRepository) ListReports(_ context.Context, q Query, limit, offset int) ([]*Report, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	matches := []*Report{}
	for _, report := range repository.byID {
		if q.CategoryID != "" && report.CategoryID != q.CategoryID {
			continue
		}
		if q.Search != "" && !matchesSearch(report, q.Search) {
			continue
		}
		matches = append(matches, repository.populated(report))
	}

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].CreatedAt.After(matches[j].CreatedAt)
		}
		return matches[i].ID > matches[j].ID
	})

	total := len(matches)
	if offset >= total {
		return []*Report{}, total, nil
	}
	end := min(offset+limit, total)
	return matches[offset:end], total, nil
}

func matchesSearch(report *Report, search string) bool {
	needle := strings.ToLower(search)
	for _, haystack := range []string{report.Title, report.Description, report.Summary} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	for _, keyword := range report.Meta.Keywords {
		if strings.Contains(strings.ToLower(keyword), needle) {
			return true
		}
	}
	return false
}

func (repository *memoryRepository) GetReportByID(_ context.Context, id string) (*Report, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if report, found := repository.byID[id]; found {
		return repository.populated(report), nil
	}
	return nil, apperr.NotFound(resource)
}

func (repository *memoryRepository) GetReportBySlug(_ context.Context, slug string) (*Report, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, report := range repository.byID {
		if report.Slug == slug {
			return repository.populated(report), nil
		}
	}
	return nil, apperr.NotFound(resource)
}

func (repository *memoryRepository) CreateReport(_ context.Context, report *Report) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.slugTaken(report) {
		return apperr.Conflict(resource + " already exists")
	}

	repository.clock = repository.clock.Add(time.Second)
	report.CreatedAt, report.UpdatedAt = repository.clock, repository.clock
	copied := *report
	repository.byID[report.ID] = &copied
	return nil
}

func (repository *memoryRepository) UpdateReport(_ context.Context, report *Report) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, found := repository.byID[report.ID]; !found {
		return apperr.NotFound(resource)
	}
	if repository.slugTaken(report) {
		return apperr.Conflict(resource + " already exists")
	}

	repository.clock = repository.clock.Add(time.Second)
	report.UpdatedAt = repository.clock
	copied := *report
	repository.byID[report.ID] = &copied
	return nil
}

func (repository *memoryRepository) DeleteReport(_ context.Context, id string) (*Report, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	report, found := repository.byID[id]
	if !found {
		return nil, apperr.NotFound(resource)
	}
	delete(repository.byID, id)
	return repository.populated(report), nil
}

func (repository *memoryRepository) slugTaken(candidate *Report) bool {
	for id, existing := range repository.byID {
		if id != candidate.ID && existing.Slug == candidate.Slug {
			return true
		}
	}
	return false
}

// populated returns a copy joined with its category, as the SQL projection does.
func (repository *memoryRepository) populated(report *Report) *Report {
	copied := *report
	for _, candidate := range repository.lookup {
		if candidate.ID == report.CategoryID {
			copied.Category = refOf(candidate)
		}
	}
	return &copied
}
