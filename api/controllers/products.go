package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mak-alamin/bestools-server/api/middleware"
	"github.com/mak-alamin/bestools-server/api/responses"
	"github.com/mak-alamin/bestools-server/api/validators"
	productsvc "github.com/mak-alamin/bestools-server/internal/products"
	pkgerrors "github.com/mak-alamin/bestools-server/pkg/errors"
	"github.com/mak-alamin/bestools-server/pkg/logger"
)

// ListProducts handles GET /product.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

// GetProduct handles GET /product/{id}.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := svc.GetByID(r.Context(), middleware.ResourceIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CreateProduct handles POST /product.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// UpdateProduct handles PUT /product/{id}.
func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), middleware.ResourceIDFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// DeleteProduct handles DELETE /product/{id}.
func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Delete(r.Context(), middleware.ResourceIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

type createProductRequest struct {
	Slug         string          `json:"slug" validate:"required,max=160"`
	Name         string          `json:"name" validate:"required,max=200"`
	Description  *string         `json:"description,omitempty"`
	ImageURL     *string         `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Price        decimal.Decimal `json:"price"`
	MinOrderQty  int             `json:"minOrderQty" validate:"omitempty,min=1"`
	AvailableQty int             `json:"availableQty" validate:"omitempty,min=0"`
}

func (p createProductRequest) toCreateInput() (productsvc.CreateProductInput, error) {
	if p.Price.IsNegative() {
		return productsvc.CreateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	return productsvc.CreateProductInput{
		Slug:         p.Slug,
		Name:         p.Name,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Price:        p.Price,
		MinOrderQty:  p.MinOrderQty,
		AvailableQty: p.AvailableQty,
	}, nil
}

type updateProductRequest struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Description  *string          `json:"description,omitempty"`
	ImageURL     *string          `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	MinOrderQty  *int             `json:"minOrderQty,omitempty" validate:"omitempty,min=1"`
	AvailableQty *int             `json:"availableQty,omitempty" validate:"omitempty,min=0"`
}

func (p updateProductRequest) toUpdateInput() (productsvc.UpdateProductInput, error) {
	if p.Price != nil && p.Price.IsNegative() {
		return productsvc.UpdateProductInput{}, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	return productsvc.UpdateProductInput{
		Name:         p.Name,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Price:        p.Price,
		MinOrderQty:  p.MinOrderQty,
		AvailableQty: p.AvailableQty,
	}, nil
}
