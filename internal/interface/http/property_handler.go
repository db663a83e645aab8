package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/estatia/estatia/internal/application"
	"github.com/estatia/estatia/pkg/response"
	"github.com/estatia/estatia/pkg/validation"
)

type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid property id", nil)
		return 0, false
	}
	return id, true
}

func (h *PropertyHandler) List(c *gin.Context) {
	props, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, props, "Properties retrieved successfully")
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	prop, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, prop, "Property retrieved successfully")
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req application.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	prop, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, prop, "Property created successfully")
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req application.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	prop, err := h.Svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, prop, "Property updated successfully")
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, nil, "Property deleted successfully")
}

func (h *PropertyHandler) SearchByLocation(c *gin.Context) {
	location := c.Query("location")
	props, err := h.Svc.SearchByLocation(c.Request.Context(), location)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, props, "Properties found by location")
}

func (h *PropertyHandler) SearchByPriceRange(c *gin.Context) {
	minPrice, err := strconv.ParseFloat(c.Query("minPrice"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid minPrice", nil)
		return
	}
	maxPrice, err := strconv.ParseFloat(c.Query("maxPrice"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid maxPrice", nil)
		return
	}
	props, err := h.Svc.SearchByPriceRange(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, props, "Properties found by price range")
}

func (h *PropertyHandler) SearchByTitle(c *gin.Context) {
	title := c.Query("title")
	props, err := h.Svc.SearchByTitle(c.Request.Context(), title)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, props, "Properties found by title")
}

func (h *PropertyHandler) SortByPriceAsc(c *gin.Context) {
	props, err := h.Svc.SortedByPriceAsc(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, props, "Properties sorted by price (ascending)")
}

func (h *PropertyHandler) SortByPriceDesc(c *gin.Context) {
	props, err := h.Svc.SortedByPriceDesc(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, props, "Properties sorted by price (descending)")
}

func (h *PropertyHandler) fail(c *gin.Context, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("property request failed")
	}
	response.AppError(c, err)
}
