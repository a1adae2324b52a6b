package services

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.uber.org/zap"

	"uobsurvey/pkg/events"
	"uobsurvey/pkg/export"
	"uobsurvey/pkg/utils"
)

// NotificationServiceInterface mails the configured notify address about
// new submissions and generated reports.
type NotificationServiceInterface interface {
	Consume(ctx context.Context) error
}

type NotificationService struct {
	subscriber events.SubscriberInterface
	mail       IMailService
	reports    ReportServiceInterface
	notifyTo   string
	logger     *zap.Logger
}

func NewNotificationService(
	subscriber events.SubscriberInterface,
	mail IMailService,
	reports ReportServiceInterface,
	notifyTo string,
	logger *zap.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		subscriber: subscriber,
		mail:       mail,
		reports:    reports,
		notifyTo:   notifyTo,
		logger:     logger,
	}
}

func (n *NotificationService) Consume(ctx context.Context) error {
	submitted, err := n.subscriber.Subscribe(ctx, events.TopicSurveySubmitted)
	if err != nil {
		return err
	}
	generated, err := n.subscriber.Subscribe(ctx, events.TopicReportGenerated)
	if err != nil {
		return err
	}

	go n.drain(ctx, submitted, n.handleSubmitted)
	go n.drain(ctx, generated, n.handleReportGenerated)
	return nil
}

func (n *NotificationService) drain(ctx context.Context, messages <-chan *message.Message, handle func(context.Context, *message.Message) error) {
	for msg := range messages {
		if err := handle(ctx, msg); err != nil {
			n.logger.Error("notification failed", zap.String("message_id", msg.UUID), zap.Error(err))
		}
		// Mail delivery is best effort; a failed message is not redelivered.
		msg.Ack()
	}
}

func (n *NotificationService) handleSubmitted(_ context.Context, msg *message.Message) error {
	var ev events.SurveySubmitted
	if err := events.Decode(msg, &ev); err != nil {
		return fmt.Errorf("decoding %s: %w", events.TopicSurveySubmitted, err)
	}

	subject := fmt.Sprintf("New survey submission from %s", orDefault(ev.Organization, "an unnamed organization"))
	body := fmt.Sprintf("%s (%s) submitted the data infrastructure survey on %s. Submission id: %s.",
		orDefault(ev.SubmittedBy, "A respondent"), orDefault(ev.Role, "role not given"),
		utils.FormatTimestamp(ev.SubmittedAt), ev.SubmissionID)

	n.logger.Info("sending submission notice", zap.String("submission_id", ev.SubmissionID))
	return n.mail.SendMailToNotifyUser(n.notifyTo, subject, body, "", "")
}

func (n *NotificationService) handleReportGenerated(ctx context.Context, msg *message.Message) error {
	var ev events.ReportGenerated
	if err := events.Decode(msg, &ev); err != nil {
		return fmt.Errorf("decoding %s: %w", events.TopicReportGenerated, err)
	}

	report, err := n.reports.LatestReport(ctx, ev.SubmissionID)
	if err != nil {
		return err
	}
	html, err := export.RenderHTMLFragment(report.Markdown)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Assessment report ready for %s", orDefault(ev.Organization, "submission "+ev.SubmissionID))
	intro := fmt.Sprintf("The data infrastructure assessment report was generated on %s.", utils.FormatTimestamp(ev.GeneratedAt))

	n.logger.Info("sending report notice", zap.String("submission_id", ev.SubmissionID), zap.String("report_id", ev.ReportID))
	return n.mail.SendReportMail(n.notifyTo, subject, intro, html, ReportFileName(ev.SubmissionID, "md"), []byte(report.Markdown))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
