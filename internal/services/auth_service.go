package services

import (
	"context"
	"strings"

	"busbook/internal/domain"
	"busbook/internal/upstream"
	"busbook/internal/utils"
)

// Authenticator covers the remote auth endpoints.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (upstream.LoginResult, error)
	Register(ctx context.Context, req upstream.RegisterRequest) error
}

// AuthService proxies credential flows to the remote API and turns a
// successful login into an explicit Session. No credentials are verified or
// stored on this side.
type AuthService struct {
	Auth      Authenticator
	RequestID string
}

func (s AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.Session{}, domain.ValidationError{Field: "email", Msg: "required"}
	}
	if password == "" {
		return domain.Session{}, domain.ValidationError{Field: "password", Msg: "required"}
	}

	res, err := s.Auth.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	utils.LogEvent(s.RequestID, "auth", "login", "user="+res.UserID+" role="+res.Role)
	return domain.Session{
		Token:    res.Token,
		UserID:   res.UserID,
		Role:     res.Role,
		Username: res.Username,
		Email:    res.Email,
	}, nil
}

func (s AuthService) Register(ctx context.Context, req upstream.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "required"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return domain.ValidationError{Field: "email", Msg: "required"}
	}
	if len(req.Password) < 6 {
		return domain.ValidationError{Field: "password", Msg: "must be at least 6 characters"}
	}

	if err := s.Auth.Register(ctx, req); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "auth", "register", "email="+req.Email)
	return nil
}
