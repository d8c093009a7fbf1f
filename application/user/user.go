package user

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/inventory-service/constant"
	"github.com/muhammadheryan/inventory-service/model"
	"github.com/muhammadheryan/inventory-service/repository/dialect"
	userrepo "github.com/muhammadheryan/inventory-service/repository/user"
	"github.com/muhammadheryan/inventory-service/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/inventory-service/utils/errors"
	"github.com/muhammadheryan/inventory-service/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) error
	ListUsers(ctx context.Context) ([]model.UserEntity, error)
	GetUser(ctx context.Context, userID string) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, userID string) error
	ValidateUser(ctx context.Context, req *model.ValidateUserRequest) error
}

type UserAppImpl struct {
	userRepo  userrepo.UserRepository
	publisher rabbitmq.EventPublisher
}

func NewUserApp(userRepo userrepo.UserRepository, publisher rabbitmq.EventPublisher) UserApp {
	return &UserAppImpl{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *UserAppImpl) CreateUser(ctx context.Context, req *model.CreateUserRequest) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return cerr.SetCustomError(constant.ErrInvalidRequest)
	}
	if err != nil {
		logger.Error("[CreateUser] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return cerr.Wrap(constant.ErrInternal, err)
	}

	err = s.userRepo.Insert(ctx, &model.UserEntity{
		UserID:       req.UserID,
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, dialect.ErrUniqueViolation) {
			logger.Warn("[CreateUser] duplicate userid", zap.String("userid", req.UserID))
			return cerr.SetCustomError(constant.ErrUserExists)
		}
		logger.Error("[CreateUser] err userRepo.Insert", zap.String("error", err.Error()))
		return cerr.Wrap(constant.ErrInternal, err)
	}

	s.publish(ctx, constant.ActionCreated, req.UserID)
	return nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context) ([]model.UserEntity, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, cerr.Wrap(constant.ErrInternal, err)
	}
	return users, nil
}

func (s *UserAppImpl) GetUser(ctx context.Context, userID string) (*model.UserEntity, error) {
	user, err := s.userRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("[GetUser] err userRepo.GetByUserID", zap.String("error", err.Error()))
		return nil, cerr.Wrap(constant.ErrInternal, err)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) DeleteUser(ctx context.Context, userID string) error {
	deleted, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return cerr.Wrap(constant.ErrInternal, err)
	}
	if !deleted {
		return cerr.SetCustomError(constant.ErrUserNotFound)
	}

	s.publish(ctx, constant.ActionDeleted, userID)
	return nil
}

func (s *UserAppImpl) ValidateUser(ctx context.Context, req *model.ValidateUserRequest) error {
	matched, err := s.userRepo.ValidateCredentials(ctx, req.UserID, req.Password)
	if err != nil {
		logger.Error("[ValidateUser] err userRepo.ValidateCredentials", zap.String("error", err.Error()))
		return cerr.Wrap(constant.ErrInternal, err)
	}
	if !matched {
		return cerr.SetCustomError(constant.ErrInvalidCredential)
	}
	return nil
}

func (s *UserAppImpl) publish(ctx context.Context, action constant.EventAction, userID string) {
	if s.publisher == nil {
		return
	}
	event := model.RecordEvent{
		Entity:     constant.EntityUser,
		Action:     action,
		Key:        userID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishRecordEvent(ctx, event); err != nil {
		logger.Error("[UserApp] err publisher.PublishRecordEvent",
			zap.String("action", string(action)),
			zap.String("error", err.Error()))
	}
}
