package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/utils/errors"
	validatorx "github.com/muhammadheryan/inventory-service/utils/validator"
)

// CreateProduct handler
// @Summary Create product
// @Description Insert a product keyed by its EAN13 barcode
// @Tags Products
// @Accept json
// @Produce plain
// @Param request body model.CreateProductRequest true "Product"
// @Success 200 {string} string "product created"
// @Failure 409 {string} string "a product with that ean13 already exists"
// @Failure 500 {object} ErrorResponse
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	const location = "POST /products"
	ctx := r.Context()

	var req model.CreateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	if err := s.ProductApp.CreateProduct(ctx, &req); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	writeConfirmation(w, "product created")
}

// ListProducts handler
// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		s.errors.write(w, r, "GET /products", err)
		return
	}

	writeSuccess(w, items)
}

// GetProduct handler
// @Summary Get product
// @Tags Products
// @Produce json
// @Param ean13 path string true "EAN13"
// @Success 200 {object} model.Product
// @Failure 404 {string} string "product not found"
// @Router /products/{ean13} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ean13 := mux.Vars(r)["ean13"]

	item, err := s.ProductApp.GetProduct(r.Context(), ean13)
	if err != nil {
		s.errors.write(w, r, "GET /products/{ean13}", err)
		return
	}

	writeSuccess(w, item)
}

// UpdatePrice handler
// @Summary Update product price
// @Tags Products
// @Accept json
// @Produce plain
// @Param ean13 path string true "EAN13"
// @Param request body model.UpdatePriceRequest true "New price"
// @Success 200 {string} string "price updated"
// @Failure 404 {string} string "product not found"
// @Router /products/price/{ean13} [put]
func (s *RestHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	const location = "PUT /products/price/{ean13}"
	ean13 := mux.Vars(r)["ean13"]

	var req model.UpdatePriceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	if err := s.ProductApp.UpdatePrice(r.Context(), ean13, *req.Price); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	writeConfirmation(w, "price updated")
}

// UpdateAmount handler
// @Summary Update product amount
// @Tags Products
// @Accept json
// @Produce plain
// @Param ean13 path string true "EAN13"
// @Param request body model.UpdateAmountRequest true "New amount"
// @Success 200 {string} string "amount updated"
// @Failure 404 {string} string "product not found"
// @Router /products/amount/{ean13} [put]
func (s *RestHandler) UpdateAmount(w http.ResponseWriter, r *http.Request) {
	const location = "PUT /products/amount/{ean13}"
	ean13 := mux.Vars(r)["ean13"]

	var req model.UpdateAmountRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	if err := s.ProductApp.UpdateAmount(r.Context(), ean13, *req.Amount); err != nil {
		s.errors.write(w, r, location, err)
		return
	}

	writeConfirmation(w, "amount updated")
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Products
// @Produce plain
// @Param ean13 path string true "EAN13"
// @Success 200 {string} string "product deleted"
// @Failure 404 {string} string "product not found"
// @Router /products/{ean13} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ean13 := mux.Vars(r)["ean13"]

	if err := s.ProductApp.DeleteProduct(r.Context(), ean13); err != nil {
		s.errors.write(w, r, "DELETE /products/{ean13}", err)
		return
	}

	writeConfirmation(w, "product deleted")
}

func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(constant.ErrInvalidRequest, err)
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.Wrap(constant.ErrInvalidRequest, fmt.Errorf("validate: %s", validatorx.Describe(err)))
	}
	return nil
}
