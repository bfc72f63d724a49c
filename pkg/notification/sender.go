// Package notification delivers out-of-band messages (email, SMS).
// The rest of the application only depends on the Sender interface;
// transport failures surface as plain errors and are never retried here.
package notification

import (
	"context"
)

type Sender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, to, body string) error
}
