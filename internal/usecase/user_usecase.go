package usecase

import (
	"context"
	"errors"

	"pediatric-gastro-api/internal/converter"
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/delivery/http/middleware"
	"pediatric-gastro-api/internal/domain/entity"
	"pediatric-gastro-api/internal/domain/repository"
	"pediatric-gastro-api/internal/service"
	"pediatric-gastro-api/pkg/identifier"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("email already exists")
)

type UserUsecase interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	BeginEdit(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type userUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
	editSessions service.EditSessionService
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	editSessions service.EditSessionService,
) UserUsecase {
	return &userUsecase{
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
		editSessions: editSessions,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to look up user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	seq, err := u.userRepo.NextSequence(ctx)
	if err != nil {
		u.log.Warnf("Failed to assign user sequence: %+v", err)
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = entity.RoleDoctor
	}

	user := &entity.User{
		ID:                        identifier.FormatUserID(seq),
		FullName:                  req.FullName,
		Email:                     req.Email,
		Password:                  string(hashedPassword),
		Role:                      role,
		Specialty:                 req.Specialty,
		MedicalRegistrationNumber: req.MedicalRegistrationNumber,
		PhoneNumber:               req.PhoneNumber,
		ConsultationAddress:       req.ConsultationAddress,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	operatorID := operatorFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, operatorID, entity.AuditActionUserCreate, "user", user.ID, converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	responses := converter.UsersToResponses(users)
	return &dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldValue := converter.UserToResponse(user)

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Specialty != "" {
		user.Specialty = req.Specialty
	}
	if req.MedicalRegistrationNumber != "" {
		user.MedicalRegistrationNumber = req.MedicalRegistrationNumber
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.ConsultationAddress != "" {
		user.ConsultationAddress = req.ConsultationAddress
	}

	// An empty password on edit means "keep the stored credential".
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	operatorID := operatorFromContext(ctx)
	if operatorID != nil {
		if err := u.editSessions.ClearIfEditing(ctx, *operatorID, service.EditTargetUser, userID); err != nil {
			u.log.Warnf("Failed to clear edit session: %+v", err)
		}
	}
	if err := u.auditService.LogUpdate(ctx, operatorID, entity.AuditActionUserUpdate, "user", user.ID, oldValue, converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.UserToResponse(user), nil
}

// DeleteUser removes the user when present. Deleting an absent id is a no-op.
func (u *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return nil
	}

	if err := u.userRepo.Delete(ctx, userID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	operatorID := operatorFromContext(ctx)
	if operatorID != nil {
		if err := u.editSessions.ClearIfEditing(ctx, *operatorID, service.EditTargetUser, userID); err != nil {
			u.log.Warnf("Failed to clear edit session: %+v", err)
		}
	}
	if err := u.auditService.LogDelete(ctx, operatorID, entity.AuditActionUserDelete, "user", userID, converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

// BeginEdit marks the user as the operator's current edit target, replacing
// any previously pending one, and returns the record for form prefill.
func (u *userUsecase) BeginEdit(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if operatorID := operatorFromContext(ctx); operatorID != nil {
		if err := u.editSessions.BeginEdit(ctx, *operatorID, service.EditTargetUser, userID); err != nil {
			u.log.Warnf("Failed to record edit session: %+v", err)
		}
	}

	return converter.UserToResponse(user), nil
}

func operatorFromContext(ctx context.Context) *string {
	operatorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &operatorID
}
