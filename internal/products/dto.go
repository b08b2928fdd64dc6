package products

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mak-alamin/bestools-server/pkg/db/models"
)

// CreateProductInput holds a validated payload to create a product.
type CreateProductInput struct {
	Slug         string
	Name         string
	Description  *string
	ImageURL     *string
	Price        decimal.Decimal
	MinOrderQty  int
	AvailableQty int
}

func (in CreateProductInput) toModel() *models.Product {
	minOrder := in.MinOrderQty
	if minOrder <= 0 {
		minOrder = 1
	}
	return &models.Product{
		Slug:         strings.TrimSpace(in.Slug),
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Price:        in.Price,
		MinOrderQty:  minOrder,
		AvailableQty: in.AvailableQty,
	}
}

// UpdateProductInput holds optional replacement values for a product. Nil
// fields are left untouched.
type UpdateProductInput struct {
	Name         *string
	Description  *string
	ImageURL     *string
	Price        *decimal.Decimal
	MinOrderQty  *int
	AvailableQty *int
}

func (in UpdateProductInput) assignments() map[string]any {
	out := map[string]any{}
	if in.Name != nil {
		out["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		out["description"] = *in.Description
	}
	if in.ImageURL != nil {
		out["image_url"] = *in.ImageURL
	}
	if in.Price != nil {
		out["price"] = *in.Price
	}
	if in.MinOrderQty != nil {
		out["min_order_qty"] = *in.MinOrderQty
	}
	if in.AvailableQty != nil {
		out["available_qty"] = *in.AvailableQty
	}
	return out
}
