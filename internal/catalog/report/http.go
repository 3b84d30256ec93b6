package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/insightsource/catalog/internal/platform/request"
	"github.com/insightsource/catalog/internal/platform/respond"
	"github.com/insightsource/catalog/pkg/pagination"
	"github.com/insightsource/catalog/pkg/query"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listReports)
	router.Post("/", handler.createReport)
	router.Get("/{identifier}", handler.getReport)
	router.Put("/{identifier}", handler.updateReport)
	router.Delete("/{identifier}", handler.deleteReport)
}

func (handler *Handler) listReports(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Category: query.Text(request, "category"),
		Search:   query.Text(request, "search"),
	}

	reports, total, err := handler.service.ListReports(request.Context(), filter, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Reports fetched successfully", reports,
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getReport(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.GetReport(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Report fetched successfully", report)
}

func (handler *Handler) createReport(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.CreateReport(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Report created successfully", report)
}

func (handler *Handler) updateReport(writer http.ResponseWriter, request *http.Request) {
	var input UpdateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.UpdateReport(request.Context(), requestutil.Param(request, "identifier"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Report updated successfully", report)
}

func (handler *Handler) deleteReport(writer http.ResponseWriter, request *http.Request) {
	report, err := handler.service.DeleteReport(request.Context(), requestutil.Param(request, "identifier"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Report deleted successfully", report)
}
