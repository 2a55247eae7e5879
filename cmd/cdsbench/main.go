// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command cdsbench is a small driver that exercises queue, hashmap, and
// pool together: producers enqueue work directly onto a queue.Queue,
// a pool.Pool of workers computes over it, and results land in a
// hashmap.Map keyed by task index. It stands in for the original
// project's examples/main.cpp and benchmarks/main.cpp, which drove the
// three data structures from a single process for manual inspection.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ErselSeyit/concurrent-data-structures/hashmap"
	"github.com/ErselSeyit/concurrent-data-structures/internal/rt"
	"github.com/ErselSeyit/concurrent-data-structures/pool"
	"github.com/ErselSeyit/concurrent-data-structures/queue"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	app := &cli.App{
		Name:  "cdsbench",
		Usage: "drive the queue, hashmap, and pool packages together",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "pool worker count",
				Value: 4,
			},
			&cli.IntFlag{
				Name:  "producers",
				Usage: "number of producer goroutines",
				Value: 4,
			},
			&cli.IntFlag{
				Name:  "tasks-per-producer",
				Usage: "tasks enqueued by each producer",
				Value: 250,
			},
			&cli.IntFlag{
				Name:  "buckets",
				Usage: "bucket count for the results hash map",
				Value: 1024,
			},
		},
		Action: func(c *cli.Context) error {
			return run(&log, c.Int("workers"), c.Int("producers"), c.Int("tasks-per-producer"), c.Int("buckets"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("cdsbench failed")
	}
}

// unit is the element type pushed through the demo's own queue.Queue,
// distinct from pool's internal task queue: it is the producer-side
// work item before it is handed to the pool via pool.Submit.
type unit struct {
	id    int
	input int
}

func run(log *zerolog.Logger, workers, producers, tasksPerProducer, buckets int) error {
	start := time.Now()

	work := queue.New[unit]()
	total := producers * tasksPerProducer

	log.Info().
		Int("workers", workers).
		Int("producers", producers).
		Int("total_units", total).
		Msg("starting run")

	var g errgroup.Group
	for p := range producers {
		g.Go(func() error {
			base := p * tasksPerProducer
			for i := range tasksPerProducer {
				work.Enqueue(unit{id: base + i, input: base + i})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Int("queued", work.ApproxSize()).Msg("producers finished")

	p := pool.New(workers)
	defer p.Shutdown()

	results := hashmap.New[int, int](buckets)

	var submitGroup errgroup.Group
	for {
		u, ok := work.Dequeue()
		if !ok {
			break
		}
		submitGroup.Go(func() error {
			f, err := pool.Submit(p, func() (int, error) {
				return u.input * 2, nil
			})
			if err != nil {
				if rt.NonFailure(err, pool.ErrShutdown) {
					log.Warn().Int("unit", u.id).Msg("submit rejected during shutdown")
					return nil
				}
				return err
			}
			v, err := f.Wait()
			if err != nil {
				log.Warn().Int("unit", u.id).Err(err).Msg("task failed")
				return nil
			}
			results.Insert(u.id, v)
			return nil
		})
	}
	if err := submitGroup.Wait(); err != nil {
		return err
	}

	p.Wait()

	log.Info().
		Int("results", results.Size()).
		Int("active_tasks", p.ActiveTasks()).
		Int("queued_tasks", p.QueuedTasks()).
		Dur("elapsed", time.Since(start)).
		Msg("run complete")

	return nil
}
