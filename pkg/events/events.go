package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	TopicSurveySubmitted = "survey.submitted"
	TopicReportGenerated = "report.generated"
)

type SurveySubmitted struct {
	SubmissionID string    `json:"submission_id"`
	Organization string    `json:"organization"`
	Role         string    `json:"role"`
	SubmittedBy  string    `json:"submitted_by"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type ReportGenerated struct {
	SubmissionID string    `json:"submission_id"`
	ReportID     string    `json:"report_id"`
	Organization string    `json:"organization"`
	GeneratedAt  time.Time `json:"generated_at"`
}

type PublisherInterface interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type SubscriberInterface interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// Bus is an in-process pub/sub backed by a watermill Go channel.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NewStdLogger(false, false),
		),
	}
}

func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	return b.pubSub.Publish(topic, msg)
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// Decode unmarshals a message payload into v.
func Decode(msg *message.Message, v any) error {
	return json.Unmarshal(msg.Payload, v)
}
