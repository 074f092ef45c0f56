package handlers

import (
	"errors"
	"net/http"

	request "casamento_pe/internal/adapter/http/dto/request"
	response "casamento_pe/internal/adapter/http/dto/response"
	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase"
	"casamento_pe/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGiftPayload = pkg.NewDomainErrorSimple("INVALID_GIFT_INPUT", "Invalid gift payload", http.StatusBadRequest)
)

// GiftHandler handles HTTP requests for the gift catalog: the public guest
// listing plus the admin CRUD surface.

type GiftHandler struct {
	usecase usecase.IGiftUseCase
}

func NewGiftHandler(uc usecase.IGiftUseCase) *GiftHandler {
	return &GiftHandler{usecase: uc}
}

// List returns the catalog, optionally filtered by ?category= and
// ?available=true.
func (h *GiftHandler) List(c *gin.Context) {
	category := entities.Category(c.Query("category"))
	onlyAvailable := c.Query("available") == "true"

	gifts, err := h.usecase.List(c.Request.Context(), category, onlyAvailable)
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGifts(gifts))
}

func (h *GiftHandler) GetByID(c *gin.Context) {
	gift, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGift(gift))
}

func (h *GiftHandler) Create(c *gin.Context) {
	var payload request.GiftCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGiftPayload.HTTPStatus, errInvalidGiftPayload.ToHTTPError())
		return
	}

	gift, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromGift(gift))
}

func (h *GiftHandler) Update(c *gin.Context) {
	var payload request.GiftUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGiftPayload.HTTPStatus, errInvalidGiftPayload.ToHTTPError())
		return
	}

	gift, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGift(gift))
}

func (h *GiftHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapGiftError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapGiftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGiftID), errors.Is(err, usecase.ErrInvalidGiftData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGiftNotFound):
		return pkg.NewDomainErrorSimple("GIFT_NOT_FOUND", "Gift not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
