package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"startup-compliance-be/internal/entity"
	"startup-compliance-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertConsumerCreatesAlerts(t *testing.T) {
	store := newFakeStore()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	consumer := NewAlertConsumerService(store, pubSub, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = consumer.Consume(ctx)
	}()
	// Let the subscription register before publishing.
	time.Sleep(100 * time.Millisecond)

	userId := uuid.New()
	payload, err := json.Marshal(events.GuidanceAbsorbedPayload{
		UserId:              userId.String(),
		SectionTitles:       []string{"Step 1: Registration"},
		ComplianceItemCount: 3,
		DocumentNames:       []string{"Obtain PAN card"},
	})
	require.NoError(t, err)

	err = pubSub.Publish(events.TopicGuidanceAbsorbed, message.NewMessage(watermill.NewUUID(), payload))
	require.NoError(t, err)

	// One alert for the compliance items, one for the outstanding documents.
	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.alerts) == 2
	}, 2*time.Second, 10*time.Millisecond)

	store.mu.Lock()
	defer store.mu.Unlock()
	for _, alert := range store.alerts {
		assert.Equal(t, userId, alert.UserId)
		assert.Equal(t, entity.AlertStatusPending, alert.Status)
	}
}

func TestAlertConsumerSkipsEmptyAbsorption(t *testing.T) {
	store := newFakeStore()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	defer pubSub.Close()

	consumer := NewAlertConsumerService(store, pubSub, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = consumer.Consume(ctx)
	}()
	time.Sleep(100 * time.Millisecond)

	payload, err := json.Marshal(events.GuidanceAbsorbedPayload{UserId: uuid.NewString()})
	require.NoError(t, err)
	err = pubSub.Publish(events.TopicGuidanceAbsorbed, message.NewMessage(watermill.NewUUID(), payload))
	require.NoError(t, err)

	// Malformed payloads are dropped, not retried.
	err = pubSub.Publish(events.TopicGuidanceAbsorbed, message.NewMessage(watermill.NewUUID(), []byte("not json")))
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)
	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.alerts)
}
