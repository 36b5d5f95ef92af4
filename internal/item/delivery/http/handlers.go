package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "item-catalog/pkg/errors"
	"item-catalog/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a new item with title, description and an optional photo.
// @Tags        Items
// @Accept      multipart/form-data
// @Produce     json
// @Param       title       formData string true  "Item title (max 100 chars)"
// @Param       description formData string true  "Item description"
// @Param       photo       formData file   false "Photo (PNG or JPEG, max 5 MiB)"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List items
// @Description Returns a paginated item list with optional filters and sorting.
// @Tags        Items
// @Produce     json
// @Param       page        query int    false "Page number (default 1)"
// @Param       limit       query int    false "Page size, 1..50"
// @Param       title       query string false "Case-insensitive title substring filter"
// @Param       description query string false "Case-insensitive description substring filter"
// @Param       sortBy      query string false "title | description | createdAt"
// @Param       sortOrder   query string false "asc | desc"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(h.cfg.DefaultLimit))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get one item
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required"))
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Partial update: any of title, description, photo, removePhoto.
// @Tags        Items
// @Accept      multipart/form-data
// @Produce     json
// @Param       id          path     string true  "Item ID"
// @Param       title       formData string false "New title"
// @Param       description formData string false "New description"
// @Param       photo       formData file   false "Replacement photo"
// @Param       removePhoto formData bool   false "Remove the current photo"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item and its photo file.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required"))
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{
		Message:  "Item successfully deleted",
		Warnings: output.Warnings,
	})
}

// Reconcile godoc
// @Summary     Delete orphan photo files
// @Description Maintenance sweep removing stored photos no item references.
// @Tags        Items
// @Produce     json
// @Success     200 {object} reconcileResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/maintenance/reconcile [POST]
func (h *handler) Reconcile(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Reconcile(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reconcile: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, reconcileResp{
		Deleted:  output.Deleted,
		Warnings: output.Warnings,
	})
}
