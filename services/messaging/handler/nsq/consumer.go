package nsq

import (
	"context"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/pkg/nsq"
	"github.com/ridepool/ridepool/services/messaging"
)

const (
	topicBookingCreated = "booking.created"
	channelMessaging    = "messaging"
)

// BookingConsumer turns booking events into conversation notices
type BookingConsumer struct {
	messagingUC messaging.MessagingUC
	consumer    *nsq.Consumer
}

// StartBookingConsumer subscribes to booking creation events and posts
// a notice from the passenger into the linked conversation.
func StartBookingConsumer(cfg *models.Config, messagingUC messaging.MessagingUC) (*BookingConsumer, error) {
	bc := &BookingConsumer{messagingUC: messagingUC}

	consumer, err := nsq.NewConsumer(topicBookingCreated, channelMessaging, cfg.NSQ.Address, bc.handleBookingCreated)
	if err != nil {
		return nil, err
	}
	bc.consumer = consumer

	if len(cfg.NSQ.LookupdAddrs) > 0 {
		if err := consumer.ConnectToLookupd(cfg.NSQ.LookupdAddrs); err != nil {
			consumer.Stop()
			return nil, err
		}
	}

	return bc, nil
}

func (bc *BookingConsumer) handleBookingCreated(body []byte) error {
	var event models.BookingCreatedEvent
	if err := nsq.UnmarshalMessage(body, &event); err != nil {
		// A malformed event will never parse; requeueing it is useless.
		logger.Warn("Dropping malformed booking event", logger.Err(err))
		return nil
	}

	err := bc.messagingUC.PostBookingNotice(context.Background(), &event)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			// The conversation is gone; this event can never be applied.
			logger.Warn("Dropping booking event for missing conversation",
				logger.Err(err),
				logger.String("conversation_id", event.ConversationID.String()),
			)
			return nil
		}
		return err
	}

	logger.Info("Posted booking notice",
		logger.String("booking_id", event.BookingID.String()),
		logger.String("conversation_id", event.ConversationID.String()),
	)
	return nil
}

// Stop gracefully stops the consumer
func (bc *BookingConsumer) Stop() {
	if bc.consumer != nil {
		bc.consumer.Stop()
	}
}
