package http

import (
	"time"

	"item-catalog/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `form:"title"       binding:"required,max=100"`
	Description string `form:"description" binding:"required"`

	photo []byte // extracted from the multipart part separately
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Title:       r.Title,
		Description: r.Description,
		Photo:       r.photo,
	}
}

// ---

type listReq struct {
	Page        int    `form:"page"        binding:"omitempty,min=1"`
	Limit       int    `form:"limit"       binding:"omitempty,min=1,max=50"`
	Title       string `form:"title"`
	Description string `form:"description"`
	SortBy      string `form:"sortBy"      binding:"omitempty,oneof=title description createdAt"`
	SortOrder   string `form:"sortOrder"   binding:"omitempty,oneof=asc desc"`
}

func (r listReq) toInput(defaultLimit int) item.ListItemsInput {
	limit := r.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	return item.ListItemsInput{
		Page:                r.Page,
		Limit:               limit,
		TitleContains:       r.Title,
		DescriptionContains: r.Description,
		SortBy:              r.SortBy,
		SortOrder:           r.SortOrder,
	}
}

// ---

// updateReq is a partial update; removePhoto is control-only and wins over a
// supplied photo part.
type updateReq struct {
	ID          string `form:"-"` // populated from URI param
	Title       string `form:"title"       binding:"omitempty,max=100"`
	Description string `form:"description"`
	RemovePhoto bool   `form:"removePhoto"`

	photo []byte
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Photo:       r.photo,
		RemovePhoto: r.RemovePhoto,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		PhotoURL:    it.PhotoURL,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// listResp is the paginated envelope.
type listResp struct {
	Data       []itemResp `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	data := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		data[i] = newItemResp(it)
	}
	return listResp{
		Data:       data,
		Total:      out.Total,
		Page:       out.Page,
		Limit:      out.Limit,
		TotalPages: out.TotalPages,
	}
}

type deleteResp struct {
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

type reconcileResp struct {
	Deleted  []string `json:"deleted"`
	Warnings []string `json:"warnings,omitempty"`
}
