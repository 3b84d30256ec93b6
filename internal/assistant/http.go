package assistant

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/insightsource/catalog/internal/platform/request"
	"github.com/insightsource/catalog/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/messages", handler.sendMessage)
	router.Get("/context", handler.getContext)
}

func (handler *Handler) sendMessage(writer http.ResponseWriter, request *http.Request) {
	var input MessageInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	reply, err := handler.service.Reply(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Reply generated successfully", reply)
}

func (handler *Handler) getContext(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Context(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Assistant context built successfully", view)
}
