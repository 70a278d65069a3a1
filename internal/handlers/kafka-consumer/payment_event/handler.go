package payment_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"cliver/internal/entities"
	transactionservice "cliver/internal/service/transaction"
	"cliver/pkg/logger"
)

// paymentEvent - событие платежного провайдера из топика payment.events.
type paymentEvent struct {
	UserID        string  `json:"user_id"`
	Type          string  `json:"type"`
	Amount        int64   `json:"amount"`
	Status        string  `json:"status"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Description   *string `json:"description,omitempty"`
}

type Handler struct {
	transactionService       Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, transactionService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		transactionService:       transactionService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group), выходим
			h.log.Info("payment.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event paymentEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("user", event.UserID),
		logger.NewField("type", event.Type),
		logger.NewField("amount", event.Amount),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.events processing")

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("payment.events handler bad user id, message skipped")
		sess.MarkMessage(message, "")
		return false
	}

	transactionCreate := entities.TransactionCreate{
		UserID:        userID,
		Type:          entities.TransactionTypeType(event.Type),
		Amount:        event.Amount,
		Status:        entities.TransactionStatusType(event.Status),
		PaymentMethod: event.PaymentMethod,
		Description:   event.Description,
	}

	transaction, err := h.transactionService.RecordTransaction(ctx, transactionCreate)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, transactionservice.ErrInvalidType),
			errors.Is(err, transactionservice.ErrInvalidStatus),
			errors.Is(err, transactionservice.ErrInvalidAmount),
			errors.Is(err, transactionservice.ErrInvalidUserID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler invalid event, message skipped")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler failed to record transaction")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("transaction", transaction.ID.String()),
		logger.NewField("user", transaction.UserID.String()),
		logger.NewField("status", transaction.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("payment.events: processed")

	sess.MarkMessage(message, "")
	return false
}
