package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cliver/internal/entities"
	retrierconfig "cliver/pkg/retrier"
	"cliver/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "auth-provider"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// AuthGateway инкапсулирует HTTP-протокол auth-провайдера: signup и
// парольный login. Провайдер сам выпускает JWT, сервис только передает
// сессию клиенту.
type AuthGateway struct {
	client     httpClient
	retrier    retrier
	baseURL    string
	serviceKey string
}

func New(client httpClient, baseURL, serviceKey string) *AuthGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &AuthGateway{
		client:     client,
		retrier:    backoff_adapter.New(retryConfig),
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
	}
}

func (g *AuthGateway) SignUp(ctx context.Context, data entities.SignUpData) (*entities.AuthSession, error) {
	body := signUpRequest{
		Email:    data.Email,
		Password: data.Password,
		Data: signUpMetadata{
			Role:     data.Role.String(),
			FullName: data.FullName,
			Phone:    data.Phone,
		},
	}

	var resp sessionResponse
	err := g.executeWithMetrics(ctx, "SignUp", func(ctx context.Context) error {
		return g.post(ctx, "/auth/v1/signup", body, &resp)
	})
	if err != nil {
		if isStatus(err, http.StatusUnprocessableEntity) || isStatus(err, http.StatusConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("gateway auth, sign up: %w", err)
	}

	return toDomainSession(&resp)
}

func (g *AuthGateway) SignIn(ctx context.Context, email, password string) (*entities.AuthSession, error) {
	body := signInRequest{
		Email:    email,
		Password: password,
	}

	var resp sessionResponse
	err := g.executeWithMetrics(ctx, "SignIn", func(ctx context.Context) error {
		return g.post(ctx, "/auth/v1/token?grant_type=password", body, &resp)
	})
	if err != nil {
		if isStatus(err, http.StatusBadRequest) || isStatus(err, http.StatusUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("gateway auth, sign in: %w", err)
	}

	return toDomainSession(&resp)
}

func (g *AuthGateway) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", g.serviceKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &statusError{
			code:    resp.StatusCode,
			message: firstNonEmpty(errResp.Message, errResp.ErrorDescription, errResp.Error, resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("auth provider responded %d: %s", e.code, e.message)
}

func isStatus(err error, code int) bool {
	var se *statusError
	return errors.As(err, &se) && se.code == code
}

func isRetryableStatus(err error) bool {
	if err == nil {
		return false
	}

	var se *statusError
	if !errors.As(err, &se) {
		// сетевые ошибки ретраим
		return true
	}

	switch se.code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (g *AuthGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}
	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	return "network_error"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
