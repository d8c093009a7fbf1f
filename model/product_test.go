package model_test

import (
	"encoding/json"
	"testing"

	"github.com/muhammadheryan/inventory-service/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(f float64) *float64 { return &f }

func int64Ptr(i int64) *int64 { return &i }

func TestCreateProductRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    model.CreateProductRequest
		wantErr bool
	}{
		{
			name: "numbers",
			body: `{"ean13":"1234567890123","name":"Widget","price":9.99,"amount":10}`,
			want: model.CreateProductRequest{EAN13: "1234567890123", Name: "Widget", Price: 9.99, Amount: 10},
		},
		{
			name: "numeric strings from a form",
			body: `{"ean13":"1234567890123","name":"Widget","price":"9.99","amount":"10"}`,
			want: model.CreateProductRequest{EAN13: "1234567890123", Name: "Widget", Price: 9.99, Amount: 10},
		},
		{
			name: "missing numbers stay zero",
			body: `{"ean13":"1234567890123"}`,
			want: model.CreateProductRequest{EAN13: "1234567890123"},
		},
		{
			name:    "non numeric price",
			body:    `{"ean13":"1234567890123","price":"cheap"}`,
			wantErr: true,
		},
		{
			name:    "fractional amount",
			body:    `{"ean13":"1234567890123","amount":"1.5"}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got model.CreateProductRequest
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateRequests_UnmarshalJSON(t *testing.T) {
	var price model.UpdatePriceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"price":"12.5"}`), &price))
	assert.Equal(t, float64Ptr(12.5), price.Price)

	price = model.UpdatePriceRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &price))
	assert.Nil(t, price.Price)

	var amount model.UpdateAmountRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount":0}`), &amount))
	assert.Equal(t, int64Ptr(0), amount.Amount)

	amount = model.UpdateAmountRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"7"}`), &amount))
	assert.Equal(t, int64Ptr(7), amount.Amount)

	assert.Error(t, json.Unmarshal([]byte(`{"amount":"seven"}`), &amount))
}
