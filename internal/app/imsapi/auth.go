package imsapi

import (
	"context"
	"errors"
	"net/http"
)

// LoginResult is the identity the service hands back on a successful
// login. Message is also set on credential rejections.
type LoginResult struct {
	Success     bool   `json:"success"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	ProfileName string `json:"profile_name"`
	Message     string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login posts credentials to the service. A credential rejection comes
// back as (LoginResult{Success: false, Message: …}, nil); the error return
// is reserved for transport failures and unexpected statuses.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var res LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &res)
	if err == nil {
		return res, nil
	}

	// The service signals bad credentials with a 4xx whose body carries
	// success=false and a message; fold that into the result so callers
	// handle both rejection shapes the same way.
	var se *StatusError
	if errors.As(err, &se) && se.Status >= 400 && se.Status < 500 {
		return LoginResult{Success: false, Message: se.Message}, nil
	}
	return LoginResult{}, err
}
