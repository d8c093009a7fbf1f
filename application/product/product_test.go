package product_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	appproduct "github.com/muhammadheryan/inventory-service/application/product"
	"github.com/muhammadheryan/inventory-service/constant"
	productmocks "github.com/muhammadheryan/inventory-service/mocks/repository/product"
	publishermocks "github.com/muhammadheryan/inventory-service/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/repository/dialect"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/stretchr/testify/mock"
)

func eventFor(action constant.EventAction, key string) interface{} {
	return mock.MatchedBy(func(ev model.RecordEvent) bool {
		return ev.Entity == constant.EntityProduct &&
			ev.Action == action &&
			ev.Key == key &&
			!ev.OccurredAt.IsZero()
	})
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestProductApp_CreateProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		publisher   *publishermocks.EventPublisher
	}
	type args struct {
		ctx context.Context
		req *model.CreateProductRequest
	}
	req := &model.CreateProductRequest{EAN13: "1234567890123", Name: "Widget", Price: 9.99, Amount: 10}
	entity := &model.Product{EAN13: "1234567890123", Name: "Widget", Price: 9.99, Amount: 10}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: product created and event published",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.productRepo.
					On("Insert", mock.Anything, entity).
					Return(nil).
					Once()
				f.publisher.
					On("PublishRecordEvent", mock.Anything, eventFor(constant.ActionCreated, "1234567890123")).
					Return(nil).
					Once()
			},
		},
		{
			name: "success: publish failure does not fail the request",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.productRepo.
					On("Insert", mock.Anything, entity).
					Return(nil).
					Once()
				f.publisher.
					On("PublishRecordEvent", mock.Anything, mock.Anything).
					Return(errors.New("broker down")).
					Once()
			},
		},
		{
			name: "error: duplicate ean13",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.productRepo.
					On("Insert", mock.Anything, entity).
					Return(fmt.Errorf("%w: UNIQUE constraint failed", dialect.ErrUniqueViolation)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrProductExists,
		},
		{
			name: "error: storage failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			args: args{ctx: context.Background(), req: req},
			mockCall: func(f fields) {
				f.productRepo.
					On("Insert", mock.Anything, entity).
					Return(errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo, tt.fields.publisher)

			err := app.CreateProduct(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
			}
		})
	}
}

func TestProductApp_ListProducts(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     []model.Product
		wantErr  bool
	}{
		{
			name: "success: list products",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("List", mock.Anything).
					Return([]model.Product{
						{EAN13: "1", Name: "Product 1", Price: 50000.0, Amount: 100},
						{EAN13: "2", Name: "Product 2", Price: 75000.0, Amount: 50},
					}, nil).
					Once()
			},
			want: []model.Product{
				{EAN13: "1", Name: "Product 1", Price: 50000.0, Amount: 100},
				{EAN13: "2", Name: "Product 2", Price: 75000.0, Amount: 50},
			},
		},
		{
			name: "success: empty table",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("List", mock.Anything).
					Return([]model.Product{}, nil).
					Once()
			},
			want: []model.Product{},
		},
		{
			name: "error: repository List returns error",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
			},
			mockCall: func(f fields) {
				f.productRepo.
					On("List", mock.Anything).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo, nil)

			got, err := app.ListProducts(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListProducts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, constant.ErrInternal)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListProducts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_GetProduct(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name     string
		fields   fields
		ean13    string
		mockCall func(f fields)
		want     *model.Product
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: get product by ean13",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			ean13:  "1234567890123",
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByEAN13", mock.Anything, "1234567890123").
					Return(&model.Product{EAN13: "1234567890123", Name: "Widget", Price: 9.99, Amount: 10}, nil).
					Once()
			},
			want: &model.Product{EAN13: "1234567890123", Name: "Widget", Price: 9.99, Amount: 10},
		},
		{
			name:   "error: product not found",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			ean13:  "0000000000000",
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByEAN13", mock.Anything, "0000000000000").
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name:   "error: repository GetByEAN13 returns error",
			fields: fields{productRepo: productmocks.NewProductRepository(t)},
			ean13:  "1234567890123",
			mockCall: func(f fields) {
				f.productRepo.
					On("GetByEAN13", mock.Anything, "1234567890123").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo, nil)

			got, err := app.GetProduct(context.Background(), tt.ean13)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProductApp_Mutations(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
		publisher   *publishermocks.EventPublisher
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		call     func(app appproduct.ProductApp) error
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: update price",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("UpdatePrice", mock.Anything, "1234567890123", 12.5).Return(true, nil).Once()
				f.publisher.On("PublishRecordEvent", mock.Anything, eventFor(constant.ActionUpdated, "1234567890123")).Return(nil).Once()
			},
			call: func(app appproduct.ProductApp) error {
				return app.UpdatePrice(context.Background(), "1234567890123", 12.5)
			},
		},
		{
			name: "error: update price of missing product",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("UpdatePrice", mock.Anything, "0000000000000", 12.5).Return(false, nil).Once()
			},
			call: func(app appproduct.ProductApp) error {
				return app.UpdatePrice(context.Background(), "0000000000000", 12.5)
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name: "error: update price storage failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("UpdatePrice", mock.Anything, "1234567890123", 12.5).Return(false, errors.New("db error")).Once()
			},
			call: func(app appproduct.ProductApp) error {
				return app.UpdatePrice(context.Background(), "1234567890123", 12.5)
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "success: update amount",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("UpdateAmount", mock.Anything, "1234567890123", int64(3)).Return(true, nil).Once()
				f.publisher.On("PublishRecordEvent", mock.Anything, eventFor(constant.ActionUpdated, "1234567890123")).Return(nil).Once()
			},
			call: func(app appproduct.ProductApp) error {
				return app.UpdateAmount(context.Background(), "1234567890123", 3)
			},
		},
		{
			name: "error: update amount of missing product",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("UpdateAmount", mock.Anything, "0000000000000", int64(3)).Return(false, nil).Once()
			},
			call: func(app appproduct.ProductApp) error {
				return app.UpdateAmount(context.Background(), "0000000000000", 3)
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name: "success: delete product",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("Delete", mock.Anything, "1234567890123").Return(true, nil).Once()
				f.publisher.On("PublishRecordEvent", mock.Anything, eventFor(constant.ActionDeleted, "1234567890123")).Return(nil).Once()
			},
			call: func(app appproduct.ProductApp) error {
				return app.DeleteProduct(context.Background(), "1234567890123")
			},
		},
		{
			name: "error: delete missing product",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("Delete", mock.Anything, "1234567890123").Return(false, nil).Once()
			},
			call: func(app appproduct.ProductApp) error {
				return app.DeleteProduct(context.Background(), "1234567890123")
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name: "error: delete storage failure",
			fields: fields{
				productRepo: productmocks.NewProductRepository(t),
				publisher:   publishermocks.NewEventPublisher(t),
			},
			mockCall: func(f fields) {
				f.productRepo.On("Delete", mock.Anything, "1234567890123").Return(false, errors.New("db error")).Once()
			},
			call: func(app appproduct.ProductApp) error {
				return app.DeleteProduct(context.Background(), "1234567890123")
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appproduct.NewProductApp(tt.fields.productRepo, tt.fields.publisher)

			err := tt.call(app)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
			}
		})
	}
}
