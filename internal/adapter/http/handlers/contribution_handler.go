package handlers

import (
	"errors"
	"net/http"

	response "casamento_pe/internal/adapter/http/dto/response"
	"casamento_pe/internal/usecase"
	"casamento_pe/pkg"

	"github.com/gin-gonic/gin"
)

// ContributionHandler is the admin read surface over the ledger.

type ContributionHandler struct {
	usecase usecase.IContributionUseCase
}

func NewContributionHandler(uc usecase.IContributionUseCase) *ContributionHandler {
	return &ContributionHandler{usecase: uc}
}

// List returns all contributions, or only those for ?gift_id=.
func (h *ContributionHandler) List(c *gin.Context) {
	if giftID := c.Query("gift_id"); giftID != "" {
		list, err := h.usecase.ListByGiftID(c.Request.Context(), giftID)
		if err != nil {
			appErr := mapContributionError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromContributions(list))
		return
	}

	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapContributionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContributions(list))
}

// Stats returns the aggregate admin dashboard numbers.
func (h *ContributionHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapContributionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStats(stats))
}

func mapContributionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContributionGiftID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
