// Package seed loads the sample packaging catalog used by local and demo
// environments. Running it twice leaves the store unchanged.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/insightsource/catalog/internal/catalog/category"
	"github.com/insightsource/catalog/internal/catalog/report"
	"github.com/insightsource/catalog/internal/contact"
	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/pkg/pagination"
	"github.com/insightsource/catalog/pkg/pointer"
	"github.com/insightsource/catalog/pkg/slug"
)

type CategoryCreator interface {
	CreateCategory(ctx context.Context, input category.CreateInput) (*category.Category, error)
}

type ReportCreator interface {
	CreateReport(ctx context.Context, input report.CreateInput) (*report.Report, error)
}

type ContactInbox interface {
	ListMessages(ctx context.Context, params pagination.Params) ([]*contact.Message, int, error)
	CreateMessage(ctx context.Context, input contact.CreateInput) (*contact.Message, error)
}

// Summary counts what a run inserted.
type Summary struct {
	Categories int
	Reports    int
	Contacts   int
}

// Run inserts the sample data through the services so every record passes
// the same validation as API traffic. Existing records are left alone.
func Run(ctx context.Context, categories CategoryCreator, reports ReportCreator, contacts ContactInbox, logger *slog.Logger) (*Summary, error) {
	summary := &Summary{}

	for _, input := range sampleCategories() {
		_, err := categories.CreateCategory(ctx, input)
		switch {
		case err == nil:
			summary.Categories++
		case apperr.HasCode(err, apperr.CodeConflict):
			logger.Info("seed_category_exists", slog.String("name", input.Name))
		default:
			return summary, fmt.Errorf("seed: category %q: %w", input.Name, err)
		}
	}

	for _, input := range sampleReports() {
		_, err := reports.CreateReport(ctx, input)
		switch {
		case err == nil:
			summary.Reports++
		case apperr.HasCode(err, apperr.CodeConflict):
			logger.Info("seed_report_exists", slog.String("title", input.Title))
		default:
			return summary, fmt.Errorf("seed: report %q: %w", input.Title, err)
		}
	}

	// Contact messages have no natural key, so any existing inbox counts as seeded.
	_, total, err := contacts.ListMessages(ctx, pagination.New(1, 1))
	if err != nil {
		return summary, fmt.Errorf("seed: count contacts: %w", err)
	}
	if total == 0 {
		for _, input := range sampleContacts() {
			if _, err := contacts.CreateMessage(ctx, input); err != nil {
				return summary, fmt.Errorf("seed: contact from %q: %w", input.Email, err)
			}
			summary.Contacts++
		}
	}

	logger.Info("seed_completed",
		slog.Int("categories", summary.Categories),
		slog.Int("reports", summary.Reports),
		slog.Int("contacts", summary.Contacts),
	)

	return summary, nil
}

const (
	packagingResearch = "Packaging Market Research"
	sustainability    = "Sustainability & Eco-Packaging"
	regionalReports   = "Regional Packaging Reports"
)

func sampleCategories() []category.CreateInput {
	return []category.CreateInput{
		{
			Name:         packagingResearch,
			Description:  pointer.To("In-depth research on global packaging trends, materials, and regional performance across paper, flexible, and plastic segments."),
			ThumbnailURL: pointer.To("https://images.unsplash.com/photo-1616627455957-df6d0435c4c8?q=80&w=800"),
		},
		{
			Name:         sustainability,
			Description:  pointer.To("Market insights on environmentally sustainable, recyclable, and biodegradable packaging materials and practices."),
			ThumbnailURL: pointer.To("https://images.unsplash.com/photo-1607083206968-13611e1d3a43?q=80&w=800"),
		},
		{
			Name:         regionalReports,
			Description:  pointer.To("Comprehensive analysis of packaging industry performance across different countries and states, focusing on innovation and market share."),
			ThumbnailURL: pointer.To("https://images.unsplash.com/photo-1620231158340-cf05c9f2706e?q=80&w=800"),
		},
	}
}

func sampleReports() []report.CreateInput {
	return []report.CreateInput{
		{
			Title:       "Global Flexible Packaging Market Report 2024–2030",
			Category:    slug.From(packagingResearch),
			Summary:     "Comprehensive analysis of the global flexible packaging market by material type, product form, and end-user industries, highlighting growth opportunities and key players.",
			Description: "The global Flexible Packaging Market involves production and sales of flexible materials such as plastic, paper, and aluminum foil used for consumer and industrial goods. Its growth is driven by demand for lightweight, sustainable, and cost-efficient solutions across food, pharmaceuticals, and e-commerce sectors. North America dominates, while Asia-Pacific shows fastest CAGR due to industrialization and rising consumption.",
			PublishDate: "2024-04-10",
			ImageURL:    pointer.To("https://images.unsplash.com/photo-1585386959984-a41552231693?q=80&w=800"),
			Price:       449.99,
			KeyHighlights: []string{
				"Market CAGR 3.38% (2024–2030)",
				"Food and beverage sector leads usage",
				"Amcor, Sealed Air, and Mondi among key players",
			},
			TableOfContent: []string{
				"Executive Summary", "Market Overview", "Key Drivers and Restraints",
				"Regional Insights", "Company Profiles", "Future Outlook",
			},
			Meta: &report.MetaInput{
				Keywords:       &[]string{"flexible packaging", "plastic film", "food packaging", "aluminum foil", "market forecast"},
				SEODescription: pointer.To("Detailed research on the global flexible packaging market with key drivers, segmentation, and future trends up to 2030."),
			},
		},
		{
			Title:       "Global Paper and Paperboard Packaging Market Report 2024–2030",
			Category:    slug.From(sustainability),
			Summary:     "Market report covering the rise of sustainable paper and paperboard packaging, driven by eco-regulations and consumer preference for recyclable materials.",
			Description: "The Paper and Paperboard Packaging Market is expanding rapidly due to environmental awareness and regulatory restrictions on plastic. Corrugated boxes dominate, supported by e-commerce and food delivery sectors. Technological innovations in folding cartons and biodegradable coatings enhance market appeal. North America leads, while Asia-Pacific experiences the fastest growth.",
			PublishDate: "2024-05-02",
			ImageURL:    pointer.To("https://images.unsplash.com/photo-1598454449130-7dbdf9a58a32?q=80&w=800"),
			Price:       399.0,
			KeyHighlights: []string{
				"CAGR of 5.0% (2024–2030)",
				"Corrugated boxes dominate global demand",
				"Rising consumer shift toward eco-friendly packaging",
			},
			TableOfContent: []string{
				"Market Summary", "Material Segmentation", "Sustainability Drivers",
				"Regional Market Analysis", "Competitive Landscape",
			},
			Meta: &report.MetaInput{
				Keywords:       &[]string{"paper packaging", "paperboard boxes", "eco-friendly packaging", "corrugated carton", "market growth"},
				SEODescription: pointer.To("Paper and paperboard packaging market insights focusing on sustainable materials, innovation, and regional dynamics."),
			},
		},
		{
			Title:       "United States Packaging Market Outlook 2024–2031",
			Category:    slug.From(regionalReports),
			Summary:     "Analysis of the U.S. packaging industry segmented by material type and end-user industries, emphasizing sustainability and state-level trends.",
			Description: "The U.S. packaging market is driven by demand for sustainable, cost-effective, and innovative packaging materials. California leads with eco-friendly adoption, while Texas shows the fastest CAGR due to industrial investments. Plastic remains dominant, supported by developments in recyclability and biodegradable polymers.",
			PublishDate: "2024-06-15",
			ImageURL:    pointer.To("https://images.unsplash.com/photo-1624462604564-65096d3b7a2b?q=80&w=800"),
			Price:       499.0,
			KeyHighlights: []string{
				"CAGR of 3.97% (2024–2031)",
				"Plastic dominates due to versatility",
				"California leads; Texas grows fastest",
			},
			TableOfContent: []string{
				"U.S. Packaging Overview", "Material Analysis", "Market Drivers & Challenges",
				"Regional Insights", "Company Profiles", "Future Outlook",
			},
			Meta: &report.MetaInput{
				Keywords:       &[]string{"US packaging", "plastic packaging", "eco-friendly packaging", "Texas growth", "California sustainability"},
				SEODescription: pointer.To("In-depth study of the United States packaging market including state-level insights, trends, and growth projections through 2031."),
			},
		},
	}
}

func sampleContacts() []contact.CreateInput {
	return []contact.CreateInput{
		{
			Name:    "Olivia Martinez",
			Email:   "olivia.m@greentec.com",
			Subject: "Flexible Packaging Inquiry",
			Message: "Could you share regional data breakdowns for flexible packaging growth across Asia-Pacific?",
		},
		{
			Name:    "Ravi Sharma",
			Email:   "ravi@packsmart.in",
			Subject: "Request for Paper Packaging Report",
			Message: "We need access to your latest paper and paperboard packaging market insights for 2024.",
		},
		{
			Name:    "Eleanor White",
			Email:   "eleanor.white@uspackresearch.com",
			Subject: "United States Packaging Insights",
			Message: "Please provide purchase information for the U.S. Packaging Market Outlook report.",
		},
	}
}
