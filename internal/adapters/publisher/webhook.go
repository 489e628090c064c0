package publisher

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

var _ ports.EventPublisher = (*Webhook)(nil)

// JSONPoster sends a JSON body to a path on a downstream service.
// Satisfied by *httpclient.Client.
type JSONPoster interface {
	PostJSON(ctx context.Context, path string, payload any) error
}

// Webhook posts each committed batch to the event gateway in one request.
type Webhook struct {
	client JSONPoster
	path   string
}

// NewWebhook returns a publisher that posts to path through client.
func NewWebhook(client JSONPoster, path string) *Webhook {
	return &Webhook{client: client, path: path}
}

// Publish implements ports.EventPublisher.
func (w *Webhook) Publish(ctx context.Context, events []aggregate.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := w.client.PostJSON(ctx, w.path, toBatch(events)); err != nil {
		return fmt.Errorf("webhook publish: %w", err)
	}
	return nil
}
