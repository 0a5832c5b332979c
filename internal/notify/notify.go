package notify

import (
	"time"

	"github.com/sirupsen/logrus"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DefaultDuration is how long a notification stays visible unless the
// publisher says otherwise.
const DefaultDuration = 3 * time.Second

// Notification is a transient, user-visible status message. The core
// publishes these; rendering is entirely up to the subscriber.
type Notification struct {
	Message  string
	Severity Severity
	Duration time.Duration
}

// Notifier receives notifications published by the storefront core.
type Notifier interface {
	Publish(n Notification)
}

// Badge is the derived cart view shown in the navigation chrome. It is
// never persisted; it always equals the cart state at the last mutation.
type Badge struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

// BadgeListener observes cart badge recomputations.
type BadgeListener interface {
	CartChanged(b Badge)
}

// LogNotifier writes notifications to a logrus logger.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n LogNotifier) Publish(msg Notification) {
	logger := n.Logger
	if logger == nil {
		return
	}
	entry := logger.WithField("severity", msg.Severity)
	switch msg.Severity {
	case SeverityError:
		entry.Error(msg.Message)
	case SeverityWarning:
		entry.Warn(msg.Message)
	default:
		entry.Info(msg.Message)
	}
}

// Nop discards everything. Useful for embedders that render nothing.
type Nop struct{}

func (Nop) Publish(Notification) {}

func (Nop) CartChanged(Badge) {}
