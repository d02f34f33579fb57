package usecase

import (
	"context"
	"errors"
	"fmt"

	"pediatric-gastro-api/internal/converter"
	"pediatric-gastro-api/internal/delivery/dto"
	"pediatric-gastro-api/internal/domain/entity"
	"pediatric-gastro-api/internal/domain/repository"
	"pediatric-gastro-api/internal/service"
	"pediatric-gastro-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID, accessTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	auditService service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		auditService: auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &user.ID, entity.AuditActionUserLogin, "session", user.ID, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID, accessTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", userID, accessTokenID)
	if err := u.redisClient.Del(ctx, accessKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if err := u.auditService.LogCreate(ctx, &userID, entity.AuditActionUserLogout, "session", userID, nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID, claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	// Rotate: the presented refresh token is spent.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to rotate refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
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

// ForgotPassword acknowledges the request without disclosing whether the
// account exists. Mail delivery is an external concern; the request is only
// logged here.
func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil {
		return nil
	}

	u.log.Infof("Password reset requested for user %s", user.ID)
	return nil
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID, accessTokenID)
	if err := u.redisClient.Set(ctx, accessKey, "1", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID, refreshTokenID)
	if err := u.redisClient.Set(ctx, refreshKey, "1", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
