package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightsource/catalog/internal/catalog/category"
	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/internal/platform/constants"
	"github.com/insightsource/catalog/pkg/pagination"
	"github.com/insightsource/catalog/pkg/pointer"
)

func newTestService() (*Service, *memoryRepository) {
	categories := memoryCategories{
		"energy":    {ID: "0190a4c2-0000-7000-8000-000000000001", Name: "Energy", Slug: "energy"},
		"packaging": {ID: "0190a4c2-0000-7000-8000-000000000002", Name: "Packaging", Slug: "packaging"},
	}
	repository := newMemoryRepository(categories)
	return NewService(repository, categories, slog.New(slog.NewJSONHandler(io.Discard, nil))), repository
}

func TestReportLifecycle(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	created, err := service.CreateReport(ctx, CreateInput{Title: "Global Energy Outlook", Category: "energy", Price: 100})
	require.NoError(t, err)
	assert.Equal(t, "global-energy-outlook", created.Slug)
	require.NotNil(t, created.Category)
	assert.Equal(t, "energy", created.Category.Slug)

	updated, err := service.UpdateReport(ctx, "global-energy-outlook", UpdateInput{Description: pointer.To("revised")})
	require.NoError(t, err)
	assert.Equal(t, "Global Energy Outlook", updated.Title)
	assert.Equal(t, "global-energy-outlook", updated.Slug)
	assert.Equal(t, "revised", updated.Description)
	assert.Equal(t, 100.0, updated.Price)

	fetched, err := service.GetReport(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "revised", fetched.Description)
	assert.Equal(t, "Energy", fetched.Category.Name)
}

func TestCreateReport_ListFieldsDefaultToEmpty(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateReport(context.Background(), CreateInput{Title: "Global Energy Outlook", Category: "energy"})
	require.NoError(t, err)

	assert.Equal(t, []string{}, created.KeyHighlights)
	assert.Equal(t, []string{}, created.TableOfContent)
	assert.Equal(t, []string{}, created.Meta.Keywords)
	assert.Nil(t, created.PublishDate)
}

func TestCreateReport_CleansLists(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateReport(context.Background(), CreateInput{
		Title:         "Paper Packaging 2030",
		Category:      "packaging",
		KeyHighlights: []string{" CAGR 5% ", "", "  "},
		Meta:          &MetaInput{Keywords: &[]string{"Paper", "paper ", "Boxes"}, SEODescription: pointer.To(" Paper outlook ")},
		PublishDate:   "2024-05-02",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CAGR 5%"}, created.KeyHighlights)
	assert.Equal(t, []string{"Paper", "Boxes"}, created.Meta.Keywords)
	assert.Equal(t, "Paper outlook", created.Meta.SEODescription)
	require.NotNil(t, created.PublishDate)
	assert.Equal(t, "2024-05-02", created.PublishDate.Format("2006-01-02"))
}

func TestCreateReport_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateInput
		field string
	}{
		{"short_title", CreateInput{Title: "G", Category: "energy"}, FieldTitle},
		{"missing_category", CreateInput{Title: "Global Energy Outlook"}, FieldCategory},
		{"negative_price", CreateInput{Title: "Global Energy Outlook", Category: "energy", Price: -1}, FieldPrice},
		{"bad_publish_date", CreateInput{Title: "Global Energy Outlook", Category: "energy", PublishDate: "10/04/2024"}, FieldPublishDate},
		{"bad_image", CreateInput{Title: "Global Energy Outlook", Category: "energy", ImageURL: pointer.To("ftp://x")}, FieldImageURL},
		{"price_too_large", CreateInput{Title: "Global Energy Outlook", Category: "energy", Price: 1e13}, FieldPrice},
		{"slug_too_long", CreateInput{Title: "Global Energy Outlook", Category: "energy", Slug: strings.Repeat("a", SlugMaxLen+1)}, FieldSlug},
		{"slug_shaped_like_id", CreateInput{Title: "Global Energy Outlook", Category: "energy", Slug: "0190a4c2-0000-7000-8000-000000000001"}, FieldSlug},
		{"title_shaped_like_id", CreateInput{Title: "0190A4C2-0000-7000-8000-000000000001", Category: "energy"}, FieldSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService()

			_, err := service.CreateReport(context.Background(), tt.input)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)
			assert.Equal(t, tt.field, appError.Details[0].Field)
		})
	}
}

func TestCreateReport_UnknownCategoryIsNotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateReport(context.Background(), CreateInput{Title: "Global Energy Outlook", Category: "mining"})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeNotFound, appError.Code)
	assert.Equal(t, "Category not found", appError.Message)
}

func TestCreateReport_DuplicateSlugConflicts(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateReport(ctx, CreateInput{Title: "Global Energy Outlook", Category: "energy"})
	require.NoError(t, err)

	_, err = service.CreateReport(ctx, CreateInput{Title: "Global  Energy Outlook!", Category: "packaging"})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

func TestUpdateReport_TitleChangeReslugsAndMovesCategory(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateReport(ctx, CreateInput{Title: "Global Energy Outlook", Category: "energy"})
	require.NoError(t, err)

	updated, err := service.UpdateReport(ctx, "global-energy-outlook", UpdateInput{
		Title:    pointer.To("Energy Packaging Outlook"),
		Category: pointer.To("packaging"),
	})
	require.NoError(t, err)
	assert.Equal(t, "energy-packaging-outlook", updated.Slug)
	assert.Equal(t, "packaging", updated.Category.Slug)

	_, err = service.GetReport(ctx, "global-energy-outlook")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestUpdateReport_Errors(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateReport(ctx, CreateInput{Title: "Global Energy Outlook", Category: "energy"})
	require.NoError(t, err)

	_, err = service.UpdateReport(ctx, "missing-report", UpdateInput{Price: pointer.To(1.0)})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = service.UpdateReport(ctx, "global-energy-outlook", UpdateInput{Category: pointer.To("mining")})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = service.UpdateReport(ctx, "global-energy-outlook", UpdateInput{Price: pointer.To(-5.0)})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	unchanged, err := service.GetReport(ctx, "global-energy-outlook")
	require.NoError(t, err)
	assert.Equal(t, 0.0, unchanged.Price)
	assert.Equal(t, "energy", unchanged.Category.Slug)
}

func TestUpdateReport_ClearsPublishDate(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.CreateReport(ctx, CreateInput{Title: "Global Energy Outlook", Category: "energy", PublishDate: "2024-04-10T00:00:00Z"})
	require.NoError(t, err)

	updated, err := service.UpdateReport(ctx, "global-energy-outlook", UpdateInput{PublishDate: pointer.To("")})
	require.NoError(t, err)
	assert.Nil(t, updated.PublishDate)
}

func TestDeleteReport_ByIDOrSlug(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	first, err := service.CreateReport(ctx, CreateInput{Title: "Global Energy Outlook", Category: "energy"})
	require.NoError(t, err)
	_, err = service.CreateReport(ctx, CreateInput{Title: "Paper Packaging 2030", Category: "packaging"})
	require.NoError(t, err)

	deleted, err := service.DeleteReport(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "global-energy-outlook", deleted.Slug)

	deleted, err = service.DeleteReport(ctx, "paper-packaging-2030")
	require.NoError(t, err)
	assert.Equal(t, "packaging", deleted.Category.Slug)

	_, err = service.DeleteReport(ctx, first.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func seedReports(t *testing.T, service *Service, count int) {
	t.Helper()
	for i := range count {
		categorySlug := "energy"
		if i%2 == 1 {
			categorySlug = "packaging"
		}
		_, err := service.CreateReport(context.Background(), CreateInput{
			Title:    fmt.Sprintf("Market Report %02d", i),
			Category: categorySlug,
			Meta:     &MetaInput{Keywords: &[]string{fmt.Sprintf("tag-%02d", i)}},
		})
		require.NoError(t, err)
	}
}

func TestListReports_PagesRespectLimit(t *testing.T) {
	service, _ := newTestService()
	seedReports(t, service, 25)

	for _, limit := range []int{1, 3, 7, 10, 25, 100} {
		seen := map[string]bool{}
		meta := pagination.NewMeta(1, limit, 25)

		for page := 1; page <= meta.TotalPages; page++ {
			reports, total, err := service.ListReports(context.Background(), Filter{}, pagination.New(page, limit))
			require.NoError(t, err)

			assert.Equal(t, 25, total)
			assert.LessOrEqual(t, len(reports), limit)
			for _, report := range reports {
				assert.False(t, seen[report.ID], "report %s returned twice", report.Slug)
				seen[report.ID] = true
			}
		}
		assert.Len(t, seen, 25, "limit %d", limit)
	}
}

func TestListReports_NewestFirst(t *testing.T) {
	service, _ := newTestService()
	seedReports(t, service, 3)

	reports, _, err := service.ListReports(context.Background(), Filter{}, pagination.New(1, 10))
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "market-report-02", reports[0].Slug)
	assert.Equal(t, "market-report-00", reports[2].Slug)
}

func TestListReports_Filters(t *testing.T) {
	service, _ := newTestService()
	seedReports(t, service, 6)

	tests := []struct {
		name      string
		filter    Filter
		wantTotal int
	}{
		{"category", Filter{Category: "packaging"}, 3},
		{"title_case_insensitive", Filter{Search: "MARKET report 04"}, 1},
		{"keyword", Filter{Search: "tag-05"}, 1},
		{"combined", Filter{Category: "energy", Search: "tag-05"}, 0},
		{"no_match", Filter{Search: "zeppelin"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports, total, err := service.ListReports(context.Background(), tt.filter, pagination.New(1, 20))
			require.NoError(t, err)

			assert.Equal(t, tt.wantTotal, total)
			assert.Len(t, reports, tt.wantTotal)
			assert.NotNil(t, reports)
		})
	}
}

func TestListReports_UnknownCategoryIsNotFound(t *testing.T) {
	service, _ := newTestService()
	seedReports(t, service, 2)

	reports, _, err := service.ListReports(context.Background(), Filter{Category: "mining"}, pagination.New(1, 20))
	assert.Nil(t, reports)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestSnapshot_ReturnsCatalog(t *testing.T) {
	service, _ := newTestService()
	seedReports(t, service, 4)

	reports, err := service.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, reports, 4)
}

func TestSnapshot_ReadsPastOneBatch(t *testing.T) {
	service, _ := newTestService()
	count := 2*constants.AssistantSnapshotPageSize + 1
	seedReports(t, service, count)

	reports, err := service.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, count)
	assert.Equal(t, "Market Report 00", reports[count-1].Title)

	seen := map[string]bool{}
	for _, report := range reports {
		seen[report.ID] = true
	}
	assert.Len(t, seen, count)
}

var _ CategoryLookup = (*category.PostgresRepository)(nil)
