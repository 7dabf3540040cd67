package customer

import (
	"fmt"

	"storefront/domain/shared"

	"go.uber.org/zap"
)

// Notification handlers for customer events. Each is an independent
// subscriber: it consumes the event payload, emits a log line and has no
// way to reach back into the aggregate.

// WelcomeNotifier greets a freshly created customer.
type WelcomeNotifier struct {
	log *zap.Logger
}

func NewWelcomeNotifier(log *zap.Logger) *WelcomeNotifier {
	return &WelcomeNotifier{log: log}
}

func (h *WelcomeNotifier) Name() string { return "customer-welcome-notifier" }

func (h *WelcomeNotifier) Handle(event shared.DomainEvent) error {
	e, ok := event.(*CustomerCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type for %s: %s", h.Name(), event.EventName())
	}
	h.log.Info("welcome notification sent",
		zap.String("customer_id", e.CustomerID()),
		zap.String("name", e.CustomerName()))
	return nil
}

// CRMSyncNotifier is the second, independent reaction to customer
// creation; it exists to keep the created event fanning out to more than
// one handler.
type CRMSyncNotifier struct {
	log *zap.Logger
}

func NewCRMSyncNotifier(log *zap.Logger) *CRMSyncNotifier {
	return &CRMSyncNotifier{log: log}
}

func (h *CRMSyncNotifier) Name() string { return "customer-crm-sync-notifier" }

func (h *CRMSyncNotifier) Handle(event shared.DomainEvent) error {
	e, ok := event.(*CustomerCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type for %s: %s", h.Name(), event.EventName())
	}
	h.log.Info("customer queued for CRM sync",
		zap.String("customer_id", e.CustomerID()),
		zap.String("name", e.CustomerName()))
	return nil
}

// AddressChangedNotifier formats the {id, name, address} payload of an
// address change into a human-readable notification.
type AddressChangedNotifier struct {
	log *zap.Logger
}

func NewAddressChangedNotifier(log *zap.Logger) *AddressChangedNotifier {
	return &AddressChangedNotifier{log: log}
}

func (h *AddressChangedNotifier) Name() string { return "customer-address-changed-notifier" }

func (h *AddressChangedNotifier) Handle(event shared.DomainEvent) error {
	e, ok := event.(*CustomerAddressChangedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type for %s: %s", h.Name(), event.EventName())
	}
	h.log.Info(fmt.Sprintf("address of customer %s, %s changed to %s",
		e.CustomerID(), e.CustomerName(), e.Address()),
		zap.String("customer_id", e.CustomerID()))
	return nil
}
