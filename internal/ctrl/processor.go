//go:generate mockgen -destination=./mock/mock_processor.go -package=mock_ctrl . MessageProcessor
package ctrl

import (
	"context"

	"github.com/Shaktikantpadhi/sharedqueue/internal/entity"
)

// MessageProcessor handles a message once a consumer has taken it off the queue.
type MessageProcessor interface {
	Process(ctx context.Context, consumerId int, msg entity.Message) error
}
