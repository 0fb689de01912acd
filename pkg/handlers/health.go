package handlers

import (
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"github.com/banam0503-alt/goc-cafe/pkg/service"
)

type HealthHandlers struct {
	service service.HealthServiceInterface
}

func NewHealthHandlers(service service.HealthServiceInterface) *HealthHandlers {
	return &HealthHandlers{service: service}
}

func (h *HealthHandlers) Ping(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "HealthHandlers.Ping")

	if err := h.service.Ping(r.Context()); err != nil {
		log.WithError(err).Error("database unreachable")
		return nil, ginext.NewError(http.StatusServiceUnavailable, "database unreachable")
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: "ok",
		},
	}, nil
}
