package e

import (
	"context"
	"errors"
	"fmt"
	"net"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrUpstream           = errors.New("upstream error")
	ErrNoRecipients       = errors.New("no alert recipients configured")
	ErrSMSBatchFailed     = errors.New("sms batch failed")
	ErrAudioNotConfigured = errors.New("audio url is not configured")
	ErrVoiceNotConfigured = errors.New("voice application is not configured")
)

// UpstreamError is the tagged failure every provider adapter returns.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Detail     string
}

func (u *UpstreamError) Error() string {
	if u.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", u.Provider, u.StatusCode, u.Detail)
	}
	return fmt.Sprintf("%s: %s", u.Provider, u.Detail)
}

func (u *UpstreamError) Unwrap() error { return ErrUpstream }

func Upstream(provider string, status int, detail string) error {
	return &UpstreamError{Provider: provider, StatusCode: status, Detail: detail}
}

// WrapError classifies transport failures of an outbound call made for op.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrUpstream, err)
}
