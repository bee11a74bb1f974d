package shipment_location_updated

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"portal/internal/generated/dto"
	"portal/internal/pkg/metrics"
	locationservice "portal/internal/service/shipment_location"
	"portal/pkg/logger"
)

const topicLabel = "shipment.location.updated"

type Handler struct {
	locationService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, locationService Service, timeout time.Duration) *Handler {
	return &Handler{
		locationService:          locationService,
		log:                      log.With(logger.NewField("handler", topicLabel)),
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
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// Возвращает true, если ConsumeClaim нужно прервать без отметки сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.ShipmentLocationEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("bad location message")
		metrics.LocationPingsTotal.WithLabelValues("malformed").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("offset", message.Offset),
	)

	err := h.locationService.ProcessLocationPing(ctx, toDomainPing(event, time.Now()))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, locationservice.ErrInvalidLocation),
			errors.Is(err, locationservice.ErrMissingShipmentID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("location dropped")
			metrics.LocationPingsTotal.WithLabelValues("dropped").Inc()

		case errors.Is(err, locationservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("unknown shipment")
			metrics.LocationPingsTotal.WithLabelValues("unknown_shipment").Inc()

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("failed to update shipment location")
			metrics.LocationPingsTotal.WithLabelValues("failed").Inc()
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("shipment location updated")
	metrics.LocationPingsTotal.WithLabelValues("applied").Inc()
	sess.MarkMessage(message, "")
	return false
}
