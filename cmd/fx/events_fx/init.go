package events_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"uobsurvey/internal/config"
	"uobsurvey/internal/services"
	"uobsurvey/pkg/events"
	"uobsurvey/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(
		provideBus,
		func(b *events.Bus) events.PublisherInterface { return b },
		func(b *events.Bus) events.SubscriberInterface { return b },
		provideNotificationService,
	),
	fx.Invoke(startNotifications),
)

func provideBus(lc fx.Lifecycle) *events.Bus {
	bus := events.NewBus()
	lc.Append(fx.StopHook(bus.Close))
	return bus
}

func provideNotificationService(
	cfg *config.Config,
	subscriber events.SubscriberInterface,
	mail services.IMailService,
	reports services.ReportServiceInterface,
	l *zap.Logger,
) services.NotificationServiceInterface {
	return services.NewNotificationService(subscriber, mail, reports, cfg.SMTP.NotifyTo, logger.Module(l, "notifications"))
}

func startNotifications(lc fx.Lifecycle, cfg *config.Config, notifications services.NotificationServiceInterface, l *zap.Logger) {
	if !cfg.Events.Enabled || !cfg.SMTP.Enabled() {
		l.Info("mail notifications disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return notifications.Consume(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
