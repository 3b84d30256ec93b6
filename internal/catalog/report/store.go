package report

import "context"

type Repository interface {
	ListReports(context context.Context, query Query, limit, offset int) ([]*Report, int, error)
	GetReportByID(context context.Context, id string) (*Report, error)
	GetReportBySlug(context context.Context, slug string) (*Report, error)
	CreateReport(context context.Context, report *Report) error
	UpdateReport(context context.Context, report *Report) error
	DeleteReport(context context.Context, id string) (*Report, error)
}
