//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=signup_post_test
package signup_post

import (
	"context"

	"cliver/internal/entities"
	"cliver/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Gateway interface {
	SignUp(ctx context.Context, data entities.SignUpData) (*entities.AuthSession, error)
}
