package port

import (
	"context"

	"github.com/bnema/dumbed/internal/domain/entity"
)

// TopicActivePartChanged is published whenever the focused workbench part changes.
const TopicActivePartChanged = "part.active_changed"

// ActivePartChanged is the payload of TopicActivePartChanged.
// Editor is nil when the newly active part is not an editor.
type ActivePartChanged struct {
	PartID string
	Editor *entity.Editor
}

// EventHandler reacts to a published payload.
type EventHandler func(ctx context.Context, payload any)

// Subscription is a handle to a registered handler.
type Subscription interface {
	// Unsubscribe stops delivery. Calling it more than once is harmless.
	Unsubscribe()
}

// EventBus delivers published payloads to the handlers subscribed to a topic.
type EventBus interface {
	Subscribe(topic string, handler EventHandler) Subscription
	Publish(ctx context.Context, topic string, payload any)
}
