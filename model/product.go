package model

import (
	"encoding/json"
	"fmt"
)

// Product represents the products table entity
type Product struct {
	EAN13  string  `db:"ean13" json:"ean13"`
	Name   string  `db:"name" json:"name"`
	Price  float64 `db:"price" json:"price"`
	Amount int64   `db:"amount" json:"amount"`
}

// CreateProductRequest for POST /products
type CreateProductRequest struct {
	EAN13  string  `json:"ean13" validate:"required"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Amount int64   `json:"amount"`
}

// UpdatePriceRequest for PUT /products/price/{ean13}
type UpdatePriceRequest struct {
	Price *float64 `json:"price" validate:"required"`
}

// UpdateAmountRequest for PUT /products/amount/{ean13}
type UpdateAmountRequest struct {
	Amount *int64 `json:"amount" validate:"required"`
}

// Numeric fields accept a JSON number or a string holding one, as HTML forms submit them.

func (r *CreateProductRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		EAN13  string       `json:"ean13"`
		Name   string       `json:"name"`
		Price  *json.Number `json:"price"`
		Amount *json.Number `json:"amount"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	price, err := parseFloat("price", raw.Price)
	if err != nil {
		return err
	}
	amount, err := parseInt("amount", raw.Amount)
	if err != nil {
		return err
	}

	*r = CreateProductRequest{EAN13: raw.EAN13, Name: raw.Name}
	if price != nil {
		r.Price = *price
	}
	if amount != nil {
		r.Amount = *amount
	}
	return nil
}

func (r *UpdatePriceRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Price *json.Number `json:"price"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	price, err := parseFloat("price", raw.Price)
	if err != nil {
		return err
	}
	r.Price = price
	return nil
}

func (r *UpdateAmountRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		Amount *json.Number `json:"amount"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	amount, err := parseInt("amount", raw.Amount)
	if err != nil {
		return err
	}
	r.Amount = amount
	return nil
}

func parseFloat(field string, n *json.Number) (*float64, error) {
	if n == nil {
		return nil, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &f, nil
}

func parseInt(field string, n *json.Number) (*int64, error) {
	if n == nil {
		return nil, nil
	}
	i, err := n.Int64()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &i, nil
}
