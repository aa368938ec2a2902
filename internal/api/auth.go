package api

import (
	"context"

	"workerguard-console/internal/domain"

	"go.uber.org/zap"
)

// genericLoginMsg is shown when the backend rejects a login without a message
// of its own, or cannot be reached at all.
const genericLoginMsg = "login failed: check credentials and backend address"

type loginRequest struct {
	Code     string `json:"code"`
	Username string `json:"username"`
	Key      string `json:"key"`
}

type loginResponse struct {
	Success     bool   `json:"success"`
	Role        int    `json:"role"`
	Company     string `json:"company"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	Msg         string `json:"msg"`
}

// Login exchanges credentials for a Session. Both a success:false body and a
// transport failure surface as *AuthError; nothing is retried here beyond the
// client's transport-level retry.
func (c *Client) Login(ctx context.Context, code, username, key string) (*domain.Session, error) {
	var out loginResponse
	err := c.postJSON(ctx, "/auth/login", loginRequest{Code: code, Username: username, Key: key}, &out)
	if err != nil {
		c.logger.Warn("login request failed", zap.String("username", username), zap.Error(err))
		return nil, &AuthError{Msg: genericLoginMsg}
	}
	if !out.Success {
		msg := out.Msg
		if msg == "" {
			msg = genericLoginMsg
		}
		return nil, &AuthError{Msg: msg}
	}

	session := &domain.Session{
		Role:        domain.ParseRole(out.Role),
		Company:     out.Company,
		Username:    out.Username,
		AccessToken: out.AccessToken,
	}
	c.logger.Info("login succeeded",
		zap.String("username", session.Username),
		zap.String("company", session.Company),
		zap.String("role", session.Role.String()),
	)
	return session, nil
}
