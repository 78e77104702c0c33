//go:generate mockgen -destination=./mock/mock_queue.go -package=mock_ctrl . MessageSink,MessageSource,QueueStats
package ctrl

import (
	"context"

	"github.com/Shaktikantpadhi/sharedqueue/internal/entity"
)

type MessageSink interface {
	Enqueue(ctx context.Context, msg entity.Message) error
}

type MessageSource interface {
	Dequeue(ctx context.Context) (entity.Message, error)
}

type QueueStats interface {
	Len() int
	Cap() int
}
