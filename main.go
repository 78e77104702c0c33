package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Shaktikantpadhi/sharedqueue/internal/config"
	"github.com/Shaktikantpadhi/sharedqueue/internal/entity"
	"github.com/Shaktikantpadhi/sharedqueue/internal/queue"
)

func main() {
	fmt.Println("Shared Queue")

	d, err := setup()
	if err != nil {
		log.Panic(err)
	}

	if err := d.Run(context.Background()); err != nil {
		log.Panic(err)
	}
}

func provideMessageQueue(config *config.Config) (*queue.Queue[entity.Message], error) {
	return queue.New[entity.Message](config.Queue.Capacity)
}
