package broadcast

import (
	"context"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/board-service/internal/model"
	"github.com/s21platform/board-service/internal/service"
)

type fanoutJob struct {
	ctx        context.Context
	sessionKey string
	event      model.Event
}

type fanoutQueue struct {
	sink service.Publisher
	jobs chan fanoutJob
}

// Fanout hands every event to each sink, detached from the request that
// produced it. Each sink has one worker so events reach it in publish order.
// A sink whose queue is full loses the event.
type Fanout struct {
	queues []fanoutQueue
	logger logger_lib.LoggerInterface
}

func NewFanout(logger logger_lib.LoggerInterface, buffer int, sinks ...service.Publisher) *Fanout {
	if buffer <= 0 {
		buffer = defaultSendBuffer
	}

	queues := make([]fanoutQueue, 0, len(sinks))
	for _, sink := range sinks {
		queues = append(queues, fanoutQueue{
			sink: sink,
			jobs: make(chan fanoutJob, buffer),
		})
	}

	return &Fanout{
		queues: queues,
		logger: logger,
	}
}

// Run drains every sink queue until ctx is cancelled.
func (f *Fanout) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for _, q := range f.queues {
		wg.Add(1)
		go func(q fanoutQueue) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job := <-q.jobs:
					if job.sessionKey == "" {
						q.sink.Publish(job.ctx, job.event)
					} else {
						q.sink.PublishTo(job.ctx, job.sessionKey, job.event)
					}
				}
			}
		}(q)
	}

	wg.Wait()
}

func (f *Fanout) Publish(ctx context.Context, event model.Event) {
	f.enqueue(fanoutJob{ctx: context.WithoutCancel(ctx), event: event})
}

func (f *Fanout) PublishTo(ctx context.Context, sessionKey string, event model.Event) {
	if sessionKey == "" {
		return
	}
	f.enqueue(fanoutJob{ctx: context.WithoutCancel(ctx), sessionKey: sessionKey, event: event})
}

func (f *Fanout) enqueue(job fanoutJob) {
	for i, q := range f.queues {
		select {
		case q.jobs <- job:
		default:
			f.logger.Warn(fmt.Sprintf("sink %d queue full, dropping %s event", i, job.event.Type))
		}
	}
}
