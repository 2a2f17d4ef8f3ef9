package service

import (
	"context"
	"errors"
	"time"

	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/alok-48/GuruMitra/internal/repository"
	"github.com/alok-48/GuruMitra/pkg/auth"
	"github.com/alok-48/GuruMitra/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrInvalidOTP   = errors.New("invalid or expired otp")
	ErrUserNotFound = errors.New("user not found")
)

// defaultName greets first-time users until they set a real name.
const defaultName = "नया सदस्य"

type AuthService struct {
	userRepo   *repository.UserRepository
	otpRepo    *repository.OTPRepository
	jwtManager *auth.JWTManager
	otpCfg     *config.OTPConfig
	logger     *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, otpRepo *repository.OTPRepository, jwtManager *auth.JWTManager, otpCfg *config.OTPConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		jwtManager: jwtManager,
		otpCfg:     otpCfg,
		logger:     logger,
	}
}

// SendOTP generates a one-time code for the phone number and stores its
// hash. Delivery goes through an SMS gateway in production; with DevEcho
// enabled the code is returned in the response instead.
func (s *AuthService) SendOTP(ctx context.Context, req *dto.SendOTPRequest) (*dto.SendOTPResponse, error) {
	phone := auth.SanitizePhone(req.Phone)
	if len(phone) != 10 {
		return nil, ErrInvalidPhone
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashOTP(code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	otp := &models.OTPCode{
		ID:        uuid.New(),
		Phone:     phone,
		CodeHash:  hash,
		ExpiresAt: now.Add(s.otpCfg.Expiry),
		IsUsed:    false,
		CreatedAt: now,
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return nil, err
	}

	s.logger.Info("otp generated", zap.String("phone", phone))

	resp := &dto.SendOTPResponse{
		Success: true,
		Message: "OTP भेजा गया है (OTP sent)",
	}
	if s.otpCfg.DevEcho {
		resp.DevOTP = code
	}
	return resp, nil
}

// VerifyOTP checks the submitted code and signs the caller in, creating
// an account on first login.
func (s *AuthService) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.AuthResponse, error) {
	phone := auth.SanitizePhone(req.Phone)
	if len(phone) != 10 {
		return nil, ErrInvalidPhone
	}

	otp, err := s.otpRepo.GetLatestValid(ctx, phone, time.Now())
	if err != nil {
		return nil, ErrInvalidOTP
	}
	if !auth.CheckOTP(req.OTP, otp.CodeHash) {
		return nil, ErrInvalidOTP
	}
	if err := s.otpRepo.MarkUsed(ctx, otp.ID); err != nil {
		return nil, err
	}

	isNew := false
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		now := time.Now()
		user = &models.User{
			ID:        uuid.New(),
			Phone:     phone,
			Name:      defaultName,
			Role:      models.RoleRetiree,
			Language:  "hi",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		isNew = true
		s.logger.Info("user created", zap.String("user_id", user.ID.String()))
	}

	token, err := s.jwtManager.GenerateToken(user.ID.String(), string(user.Role))
	if err != nil {
		return nil, err
	}

	userResp := toUserResponse(user)
	userResp.IsNew = isNew

	return &dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    userResp,
		Message: "लॉगिन सफल (Login successful)",
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateProfile applies only the fields present in the request.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Language != "" {
		fields["language"] = req.Language
	}
	if req.District != "" {
		fields["district"] = req.District
	}
	if req.EmergencyContact != "" {
		fields["emergency_contact"] = req.EmergencyContact
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		fields["date_of_birth"] = dob
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateProfile(ctx, userID, fields); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(ctx, userID)
}

func toUserResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:               user.ID.String(),
		Name:             user.Name,
		Phone:            user.Phone,
		Role:             string(user.Role),
		Language:         user.Language,
		District:         user.District,
		State:            user.State,
		EmergencyContact: user.EmergencyContact,
	}
	if user.DateOfBirth != nil {
		resp.DateOfBirth = user.DateOfBirth.Format("2006-01-02")
	}
	return resp
}
