package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/goxp/cloud0/logger"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/service"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

type OrderHandlers struct {
	export service.ExportServiceInterface
}

func NewOrderHandlers(export service.ExportServiceInterface) *OrderHandlers {
	return &OrderHandlers{export: export}
}

// ExportOrders downloads every order as tat_ca_don_hang.xlsx.
func (h *OrderHandlers) ExportOrders(c *gin.Context) {
	log := logger.WithCtx(c, "OrderHandlers.ExportOrders")

	exporter, err := utils.CurrentExporter(c.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		abortJSON(c, http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
		return
	}

	req := model.ExportOrdersRequest{ExporterName: exporter.Name, ExporterRole: exporter.Role}
	filename, data, err := h.export.ExportOrders(c.Request.Context(), req)
	if err != nil {
		abortError(c, err)
		return
	}

	sendWorkbook(c, filename, data)
}
