package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "item-catalog/pkg/errors"
	"item-catalog/pkg/imaging"
)

// processCreateReq binds and validates the multipart create request.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBind(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	photo, err := h.processPhotoPart(c)
	if err != nil {
		return req, err
	}
	req.photo = photo
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processUpdateReq binds and validates the multipart update request + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBind(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	photo, err := h.processPhotoPart(c)
	if err != nil {
		return req, err
	}
	req.photo = photo
	return req, nil
}

// processPhotoPart extracts and vets the optional "photo" multipart part:
// size capped, content type sniffed from bytes (png/jpeg/jpg only). Returns
// nil bytes when the part is absent.
func (h *handler) processPhotoPart(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid photo upload")
	}

	if fileHeader.Size > h.cfg.MaxPhotoBytes {
		return nil, pkgErrors.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("photo exceeds maximum size of %d bytes", h.cfg.MaxPhotoBytes))
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid photo upload")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.cfg.MaxPhotoBytes+1))
	if err != nil {
		return nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid photo upload")
	}
	if int64(len(data)) > h.cfg.MaxPhotoBytes {
		return nil, pkgErrors.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("photo exceeds maximum size of %d bytes", h.cfg.MaxPhotoBytes))
	}

	// Reject early on anything but JPEG/PNG; the store re-encodes anyway, but
	// a wrong type should fail validation, not photo processing.
	if !imaging.AllowedMIME[http.DetectContentType(data)] {
		return nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "photo must be a PNG or JPEG image")
	}

	return data, nil
}
