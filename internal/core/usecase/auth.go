package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/nitinkv/docvault/internal/core/domain"
	"github.com/nitinkv/docvault/internal/core/ports"
)

// LoginUseCase drives the two-step OTP exchange and persists the
// resulting bearer token. The token itself stays opaque.
type LoginUseCase struct {
	otp    ports.OTPGateway
	tokens ports.TokenStore
}

func NewLoginUseCase(otp ports.OTPGateway, tokens ports.TokenStore) *LoginUseCase {
	return &LoginUseCase{otp: otp, tokens: tokens}
}

func (uc *LoginUseCase) RequestOTP(ctx context.Context, mobileNumber string) error {
	if !allDigits(mobileNumber) || len(mobileNumber) != 10 {
		return domain.WrapError(domain.ErrValidation, "request otp",
			errors.New("mobile number must be 10 digits"))
	}
	return uc.otp.GenerateOTP(ctx, mobileNumber)
}

func (uc *LoginUseCase) VerifyOTP(ctx context.Context, mobileNumber, otp string) (string, error) {
	if !allDigits(otp) || len(otp) != 6 {
		return "", domain.WrapError(domain.ErrValidation, "verify otp",
			errors.New("otp must be 6 digits"))
	}

	token, err := uc.otp.ValidateOTP(ctx, mobileNumber, otp)
	if err != nil {
		return "", err
	}
	if err := uc.tokens.Save(token); err != nil {
		return "", fmt.Errorf("persist token: %w", err)
	}
	return token, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
