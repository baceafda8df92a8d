package handler

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"membership/config"
	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/constants"

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

// PushHandler handles Pub/Sub push deliveries of order-completion events
type PushHandler struct {
	verifyPushAuth bool
	processor      *OrderEventProcessor
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Processor *OrderEventProcessor
	Logger    *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifyPushAuth: params.Config.OrderEvents != nil && params.Config.OrderEvents.VerifyPushAuth,
		processor:      params.Processor,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks Pub/Sub to redeliver; 200 acknowledges, including events that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	ctx := deliverycontext.WithActor(c.Request().Context(), deliverycontext.WorkerActor(constants.OrderEventsProviderPubSub))
	err = h.processor.Process(ctx, data, pushMsg.Message.Attributes["request_id"])
	if err != nil {
		retryable := IsRetryableError(err)
		logger.Error("[Worker] Failed to process order completed event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
