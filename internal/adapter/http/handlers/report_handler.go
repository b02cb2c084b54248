package handlers

import (
	"net/http"

	response "laporan_zakat/internal/adapter/http/dto/response"
	"laporan_zakat/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler gives read-only access to the record store outside the chat.
type ReportHandler struct {
	store usecase.IRecordStore
}

func NewReportHandler(store usecase.IRecordStore) *ReportHandler {
	return &ReportHandler{store: store}
}

// ListReports godoc
// @Summary      List donation reports
// @Description  Admins see every report; other operators see their own.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   response.ReportResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	identity := sessionFrom(c).Identity
	reports, err := h.store.ListReports(c.Request.Context(), &identity)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReports(reports))
}

// ListOperators godoc
// @Summary   List registered operators (admin only)
// @Tags      operators
// @Security  Bearer
// @Produce   json
// @Success   200  {array}   response.OperatorResponse
// @Failure   403  {object}  pkg.HTTPError
// @Router    /operators [get]
func (h *ReportHandler) ListOperators(c *gin.Context) {
	identity := sessionFrom(c).Identity
	ops, err := h.store.ListOperators(c.Request.Context(), &identity)
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOperators(ops))
}
