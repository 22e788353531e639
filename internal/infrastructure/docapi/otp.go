package docapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nitinkv/docvault/internal/core/domain"
)

const (
	generateOTPPath = "/generateOTP"
	validateOTPPath = "/validateOTP"
)

func (c *Client) GenerateOTP(ctx context.Context, mobileNumber string) error {
	envelope, err := c.postJSON(ctx, generateOTPPath, "",
		map[string]string{"mobile_number": mobileNumber}, "generate otp")
	if err != nil {
		return err
	}
	if !envelope.Status {
		return rejectionError("generate otp", envelope)
	}
	return nil
}

// ValidateOTP exchanges a verified code for the bearer token.
func (c *Client) ValidateOTP(ctx context.Context, mobileNumber, otp string) (string, error) {
	envelope, err := c.postJSON(ctx, validateOTPPath, "",
		map[string]string{"mobile_number": mobileNumber, "otp": otp}, "validate otp")
	if err != nil {
		return "", err
	}
	if !envelope.Status {
		return "", rejectionError("validate otp", envelope)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return "", domain.WrapError(domain.ErrUnavailable, "validate otp",
			fmt.Errorf("decode token payload: %w", err))
	}
	if payload.Token == "" {
		return "", domain.WrapError(domain.ErrUnavailable, "validate otp",
			errors.New("response is missing the token"))
	}
	return payload.Token, nil
}
