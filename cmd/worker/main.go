// loadboard-worker runs the background side of the board: the periodic
// settlement sweep and the outbox drain into Kafka.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"loadboard/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildWorkerContainer(ctx)
	app.NewWorkerRunner().MustRun(container)
}
