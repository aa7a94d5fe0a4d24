package http

import (
	"catalog-api/internal/catalog"
)

// --- Request DTOs ---

type listReq struct {
	Category string `form:"category"`
	MinPrice string `form:"minPrice"`
	Sort     string `form:"sort"`
	Fields   string `form:"fields"`
}

func (r listReq) toInput() catalog.ListInput {
	return catalog.ListInput{
		Category: r.Category,
		MinPrice: r.MinPrice,
		Sort:     r.Sort,
		Fields:   r.Fields,
	}
}

// ---

type createReq struct {
	Fields catalog.Document
}

func (r createReq) toInput() catalog.CreateInput {
	return catalog.CreateInput{Fields: r.Fields}
}

// ---

type updateReq struct {
	ID     string
	Fields catalog.Document
}

func (r updateReq) toInput() catalog.UpdateInput {
	return catalog.UpdateInput{ID: r.ID, Fields: r.Fields}
}

// --- Response DTOs ---

type listResp struct {
	Count int                `json:"count"`
	Items []catalog.Document `json:"items"`
}

func (h *handler) newListResp(out catalog.ListOutput) listResp {
	items := out.Documents
	if items == nil {
		items = []catalog.Document{}
	}
	return listResp{Count: len(items), Items: items}
}

type createResp struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

func (h *handler) newCreateResp(out catalog.CreateOutput) createResp {
	return createResp{Acknowledged: true, InsertedID: out.ID}
}
