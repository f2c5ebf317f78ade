package api

import (
	"context"
	"net/http"

	"digigrow-web/internal/core/domain"
)

type loginData struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

// Login exchanges credentials for a bearer token via POST /auth/login.
func (c *Client) Login(ctx context.Context, email string, password string) (domain.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var data loginData
	if _, err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, body, &data); err != nil {
		return domain.LoginResult{}, err
	}
	if data.Email == "" {
		data.Email = email
	}
	return domain.LoginResult{
		Token: data.Token,
		User: domain.User{
			Email:     data.Email,
			Name:      data.Name,
			Role:      data.Role,
			TokenType: data.TokenType,
		},
	}, nil
}
