package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"agroalert/config"
	deliverycontext "agroalert/internal/delivery/context"
	"agroalert/internal/domain/constants"
	"agroalert/internal/domain/repository"
	"agroalert/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying disease alert events
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	userRepo        repository.UserRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	UserRepo        repository.UserRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil && params.Config.PubSub.VerifyPushAuth

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		userRepo:        params.UserRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token when push auth is enabled
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse alert event
	var event service.AlertEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse alert event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alert event",
		slog.String("alert_id", event.AlertID),
		slog.String("disease", event.Disease),
		slog.String("severity", event.Severity),
		slog.Int("recipient_count", len(event.NotifiedUserIDs)),
	)

	// Deliver the alert through each user's opted-in channels
	if err := h.processAlert(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process alert event",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alert event processed successfully",
		slog.String("alert_id", event.AlertID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AlertEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processAlert resolves the recipients of an alert event and fans the alert
// out to each user's opted-in channels
func (h *PushHandler) processAlert(ctx context.Context, logger *slog.Logger, event *service.AlertEvent) error {
	if _, err := uuid.Parse(event.AlertID); err != nil {
		return errors.Wrap(err, "invalid alert id")
	}

	userIDs := h.parseUserIDs(logger, event)
	if len(userIDs) == 0 {
		logger.Info("[Worker] No recipients to notify",
			slog.String("alert_id", event.AlertID),
		)

		return nil
	}

	users, err := h.userRepo.FindByIDs(ctx, userIDs)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(users) == 0 {
		logger.Info("[Worker] No registered users matched the event recipients",
			slog.String("alert_id", event.AlertID),
		)

		return nil
	}

	title, body, data := h.prepareAlertContent(event)

	pushTokens := make([]string, 0, len(users))
	for _, user := range users {
		if user.Preferences.Push && user.DeviceToken != "" {
			pushTokens = append(pushTokens, user.DeviceToken)
		}

		// Email and SMS delivery are simulated with log lines; hooking up a
		// real provider only means replacing these branches.
		if user.Preferences.Email && user.Email != "" {
			logger.Info("[Worker] Email alert delivered",
				slog.String("alert_id", event.AlertID),
				slog.String("recipient", user.Email),
				slog.String("subject", title),
			)
		}
		if user.Preferences.SMS && user.Phone != "" {
			logger.Info("[Worker] SMS alert delivered",
				slog.String("alert_id", event.AlertID),
				slog.String("recipient", user.Phone),
			)
		}
	}

	if len(pushTokens) > 0 {
		if h.notificationSvc == nil {
			logger.Warn("[Worker] Push notifications skipped, no notification service configured",
				slog.String("alert_id", event.AlertID),
				slog.Int("token_count", len(pushTokens)),
			)

			return nil
		}

		sent, failed, invalidTokens, sendErr := h.notificationSvc.SendBatchNotification(ctx, pushTokens, title, body, data)
		if sendErr != nil {
			return newRetryableError(errors.WithStack(sendErr))
		}

		logger.Info("[Worker] Push delivery completed",
			slog.String("alert_id", event.AlertID),
			slog.Int("total_sent", sent),
			slog.Int("total_failed", failed),
			slog.Int("invalid_tokens", len(invalidTokens)),
		)
	}

	return nil
}

// parseUserIDs parses the recipient IDs from the event, skipping malformed ones
func (h *PushHandler) parseUserIDs(logger *slog.Logger, event *service.AlertEvent) []uuid.UUID {
	userIDs := make([]uuid.UUID, 0, len(event.NotifiedUserIDs))
	for _, idStr := range event.NotifiedUserIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			logger.Warn("[Worker] Skipping malformed user id",
				slog.String("alert_id", event.AlertID),
				slog.String("user_id", idStr),
			)

			continue
		}
		userIDs = append(userIDs, id)
	}

	return userIDs
}

// prepareAlertContent creates the notification title, body, and data payload
func (h *PushHandler) prepareAlertContent(event *service.AlertEvent) (title, body string, data map[string]string) {
	title = fmt.Sprintf("Disease alert: %s", event.Disease)
	body = fmt.Sprintf("%s severity outbreak of %s reported near your farm", event.Severity, event.Disease)
	if event.AffectedCrop != "" && event.AffectedCrop != constants.UnknownCrop {
		body = fmt.Sprintf("%s (crop: %s)", body, event.AffectedCrop)
	}

	data = map[string]string{
		"alert_id":  event.AlertID,
		"disease":   event.Disease,
		"severity":  event.Severity,
		"latitude":  fmt.Sprintf("%f", event.Latitude),
		"longitude": fmt.Sprintf("%f", event.Longitude),
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
