package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/config"
	"github.com/spec-kit/employee-portal/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventLeaveSubmitted, n.handleLeaveSubmitted)
	n.dispatcher.Subscribe(events.EventLeaveDecided, n.handleLeaveDecided)
	n.dispatcher.Subscribe(events.EventTimesheetRecorded, n.handleTimesheetRecorded)
}

func (n *NotificationService) handleLeaveSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("LeaveSubmitted", zap.String("employee_id", event.EmployeeID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleLeaveDecided(ctx context.Context, event events.Event) error {
	n.logger.Info("LeaveDecided", zap.String("employee_id", event.EmployeeID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTimesheetRecorded(ctx context.Context, event events.Event) error {
	n.logger.Info("TimesheetRecorded", zap.String("employee_id", event.EmployeeID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("employee_id", event.EmployeeID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("employee_id", event.EmployeeID),
		zap.String("event_type", string(event.Type)))
}
