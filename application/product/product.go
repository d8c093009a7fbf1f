package product

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/repository/dialect"
	productRepo "github.com/muhammadheryan/inventory-service/repository/product"
	"github.com/muhammadheryan/inventory-service/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) error
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, ean13 string) (*model.Product, error)
	UpdatePrice(ctx context.Context, ean13 string, price float64) error
	UpdateAmount(ctx context.Context, ean13 string, amount int64) error
	DeleteProduct(ctx context.Context, ean13 string) error
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
	publisher   rabbitmq.EventPublisher
}

func NewProductApp(productRepo productRepo.ProductRepository, publisher rabbitmq.EventPublisher) ProductApp {
	return &productAppImpl{productRepo: productRepo, publisher: publisher}
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) error {
	err := s.productRepo.Insert(ctx, &model.Product{
		EAN13:  req.EAN13,
		Name:   req.Name,
		Price:  req.Price,
		Amount: req.Amount,
	})
	if err != nil {
		if errors.Is(err, dialect.ErrUniqueViolation) {
			logger.Warn("[CreateProduct] duplicate ean13", zap.String("ean13", req.EAN13))
			return cerr.SetCustomError(constant.ErrProductExists)
		}
		logger.Error("[CreateProduct] err productRepo.Insert", zap.String("error", err.Error()))
		return cerr.Wrap(constant.ErrInternal, err)
	}

	s.publish(ctx, constant.ActionCreated, req.EAN13)
	return nil
}

func (s *productAppImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] err productRepo.List", zap.String("error", err.Error()))
		return nil, cerr.Wrap(constant.ErrInternal, err)
	}
	return items, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, ean13 string) (*model.Product, error) {
	result, err := s.productRepo.GetByEAN13(ctx, ean13)
	if err != nil {
		logger.Error("[GetProduct] err productRepo.GetByEAN13", zap.String("error", err.Error()))
		return nil, cerr.Wrap(constant.ErrInternal, err)
	}
	if result == nil {
		return nil, cerr.SetCustomError(constant.ErrProductNotFound)
	}
	return result, nil
}

func (s *productAppImpl) UpdatePrice(ctx context.Context, ean13 string, price float64) error {
	updated, err := s.productRepo.UpdatePrice(ctx, ean13, price)
	if err != nil {
		logger.Error("[UpdatePrice] err productRepo.UpdatePrice", zap.String("error", err.Error()))
		return cerr.Wrap(constant.ErrInternal, err)
	}
	if !updated {
		return cerr.SetCustomError(constant.ErrProductNotFound)
	}

	s.publish(ctx, constant.ActionUpdated, ean13)
	return nil
}

func (s *productAppImpl) UpdateAmount(ctx context.Context, ean13 string, amount int64) error {
	updated, err := s.productRepo.UpdateAmount(ctx, ean13, amount)
	if err != nil {
		logger.Error("[UpdateAmount] err productRepo.UpdateAmount", zap.String("error", err.Error()))
		return cerr.Wrap(constant.ErrInternal, err)
	}
	if !updated {
		return cerr.SetCustomError(constant.ErrProductNotFound)
	}

	s.publish(ctx, constant.ActionUpdated, ean13)
	return nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, ean13 string) error {
	deleted, err := s.productRepo.Delete(ctx, ean13)
	if err != nil {
		logger.Error("[DeleteProduct] err productRepo.Delete", zap.String("error", err.Error()))
		return cerr.Wrap(constant.ErrInternal, err)
	}
	if !deleted {
		return cerr.SetCustomError(constant.ErrProductNotFound)
	}

	s.publish(ctx, constant.ActionDeleted, ean13)
	return nil
}

// publish never fails the request; a broker outage only costs the notification.
func (s *productAppImpl) publish(ctx context.Context, action constant.EventAction, ean13 string) {
	if s.publisher == nil {
		return
	}
	event := model.RecordEvent{
		Entity:     constant.EntityProduct,
		Action:     action,
		Key:        ean13,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishRecordEvent(ctx, event); err != nil {
		logger.Error("[ProductApp] err publisher.PublishRecordEvent",
			zap.String("action", string(action)),
			zap.String("error", err.Error()))
	}
}
