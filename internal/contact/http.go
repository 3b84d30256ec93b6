package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/insightsource/catalog/internal/platform/request"
	"github.com/insightsource/catalog/internal/platform/respond"
	"github.com/insightsource/catalog/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listMessages)
	router.Post("/", handler.createMessage)
}

func (handler *Handler) listMessages(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	messages, total, err := handler.service.ListMessages(request.Context(), paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Contact messages fetched successfully", messages,
		pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) createMessage(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.CreateMessage(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Message sent successfully", message)
}
