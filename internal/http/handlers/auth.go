package handlers

import (
	"net/http"

	"busbook/internal/http/middleware"
	"busbook/internal/services"
	"busbook/internal/upstream"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		Auth:      apiClient(),
		RequestID: middleware.GetRequestID(c),
	}
	sess, err := svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    sess.Token,
		"role":     sess.Role,
		"userId":   sess.UserID,
		"username": sess.Username,
		"email":    sess.Email,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.AuthService{
		Auth:      apiClient(),
		RequestID: middleware.GetRequestID(c),
	}
	err := svc.Register(c.Request.Context(), upstream.RegisterRequest{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
}

// POST /api/auth/logout
// The session is bearer-token based; logout is an acknowledgement that the
// client discards the token. Nothing is kept on this side.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
