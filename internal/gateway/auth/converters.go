package auth

import (
	"github.com/google/uuid"

	"cliver/internal/entities"
)

type sessionResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Role string `json:"role"`
	} `json:"user_metadata"`
}

type errorResponse struct {
	Message          string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type signUpRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     signUpMetadata `json:"data"`
}

type signUpMetadata struct {
	Role     string `json:"role"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func toDomainSession(resp *sessionResponse) (*entities.AuthSession, error) {
	userID, err := uuid.Parse(resp.User.ID)
	if err != nil {
		return nil, err
	}

	return &entities.AuthSession{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		User: entities.AuthUser{
			ID:    userID,
			Email: resp.User.Email,
			Role:  entities.UserRoleType(resp.User.UserMetadata.Role),
		},
	}, nil
}
