package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coinwagon/models"
)

// Current spot price of one asset unit in fiat.
func (h *Handler) CurrentPrice(c *gin.Context) {
	price, err := h.services.CurrentPrice(c.Request.Context(), c.Param("asset"), c.Param("fiat"))
	if err != nil {
		newErrorResponse(c, statusFor(err), err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": price,
	})
}

// Confirmed balance of one address.
func (h *Handler) AddressBalance(c *gin.Context) {
	balance, err := h.services.AddressBalance(c.Request.Context(), c.Param("asset"), c.Param("address"))
	if err != nil {
		newErrorResponse(c, statusFor(err), err.Error())
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": balance,
	})
}

type walletBalanceInput struct {
	Entries []models.WalletEntry `json:"entries" binding:"required"`
	Fiat    string               `json:"fiat" binding:"required"`
}

// Aggregated wallet report. Per-entry failures are part of the report, not
// an error: the endpoint answers 200 with whatever resolved.
func (h *Handler) WalletBalance(c *gin.Context) {
	var input walletBalanceInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	report := h.services.WalletBalance(c.Request.Context(), input.Entries, input.Fiat)

	failures := make([]map[string]interface{}, 0, len(report.Failures))
	for _, f := range report.Failures {
		failures = append(failures, map[string]interface{}{
			"entry": f.Entry,
			"stage": f.Stage,
			"error": f.Err.Error(),
		})
	}

	wrapOkJSON(c, map[string]interface{}{
		"data": map[string]interface{}{
			"line_items": report.LineItems,
			"total":      report.Total,
			"fiat":       report.Fiat,
			"failures":   failures,
		},
	})
}
