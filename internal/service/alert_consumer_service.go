package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/pkg/logger"
	"startup-compliance-be/internal/repository/unitofwork"
	"startup-compliance-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// IAlertConsumerService turns absorption events into compliance alerts so the
// dashboard can nudge the owner toward the newly required work.
type IAlertConsumerService interface {
	Consume(ctx context.Context) error
}

type alertConsumerService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber message.Subscriber
	log        logger.ILogger
}

func NewAlertConsumerService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber message.Subscriber,
	log logger.ILogger,
) IAlertConsumerService {
	return &alertConsumerService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		log:        log,
	}
}

func (c *alertConsumerService) Consume(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, events.TopicGuidanceAbsorbed)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", events.TopicGuidanceAbsorbed, err)
	}

	for msg := range messages {
		if err := c.handle(ctx, msg); err != nil {
			c.log.Error("AlertConsumer", "failed to handle absorption event", map[string]interface{}{
				"message_id": msg.UUID,
				"error":      err.Error(),
			})
			// Ack anyway: alerts are advisory, a retry loop would spam.
		}
		msg.Ack()
	}
	return nil
}

func (c *alertConsumerService) handle(ctx context.Context, msg *message.Message) error {
	var payload events.GuidanceAbsorbedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	userId, err := uuid.Parse(payload.UserId)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", payload.UserId, err)
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	if payload.ComplianceItemCount > 0 {
		link := "/dashboard?tab=compliance"
		alert := entity.ComplianceAlert{
			Id:     uuid.New(),
			UserId: userId,
			Title:  "New compliance checklist available",
			Description: fmt.Sprintf("Your guidance added %d compliance items to review.",
				payload.ComplianceItemCount),
			Status:       entity.AlertStatusPending,
			Severity:     entity.AlertSeverityMedium,
			LinkToAction: &link,
			CreatedAt:    time.Now(),
		}
		if err := uow.ComplianceAlertRepository().Create(ctx, &alert); err != nil {
			return err
		}
	}

	if len(payload.DocumentNames) > 0 {
		link := "/dashboard?tab=upload"
		alert := entity.ComplianceAlert{
			Id:     uuid.New(),
			UserId: userId,
			Title:  "Required documents outstanding",
			Description: fmt.Sprintf("%d documents are required but not yet uploaded.",
				len(payload.DocumentNames)),
			Status:       entity.AlertStatusPending,
			Severity:     entity.AlertSeverityHigh,
			LinkToAction: &link,
			CreatedAt:    time.Now(),
		}
		if err := uow.ComplianceAlertRepository().Create(ctx, &alert); err != nil {
			return err
		}
	}

	return nil
}
