package handlers

import (
	"net/http"
	"outcome-service/internal/api/v1/rest/middleware"

	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter wires the endpoint handlers into a chi router.
func NewRouter(h *EndpointHandlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)
	r.Post("/file/upload", h.UploadFileHandle)
	r.Get("/api/v1/conversions/{conversionID}", h.GetConversionHandle)
	r.Mount("/api/v1/doc", httpSwagger.WrapHandler)
	return r
}
