package notify

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/logging"
)

// LogNotifier writes the code to the application log instead of sending
// it anywhere. Development and test use only.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, phone, code string) error {
	n.logger.Info(ctx, "sending access code", "phone", phone, "code", code)
	return nil
}
