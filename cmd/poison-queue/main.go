package main

import (
	"fmt"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	watermillMessage "tours/internal/interfaces/message"
)

func newQueue(c *cli.Context) (*Queue, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: c.String("redis-addr"),
	})

	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, watermill.NewStdLogger(false, false))
	if err != nil {
		return nil, err
	}

	return NewQueue(redisClient, c.String("stream"), publisher), nil
}

func main() {
	app := &cli.App{
		Name:  "poison-queue",
		Usage: "Manage messages that exhausted router retries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "redis-addr",
				Value:   "localhost:6379",
				EnvVars: []string{"REDIS_ADDR"},
			},
			&cli.StringFlag{
				Name:  "stream",
				Value: watermillMessage.PoisonQueueTopic,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "preview",
				Usage: "list poisoned messages",
				Action: func(c *cli.Context) error {
					q, err := newQueue(c)
					if err != nil {
						return err
					}

					messages, err := q.Preview(c.Context)
					if err != nil {
						return err
					}

					for _, m := range messages {
						fmt.Printf("%v\t%v\t%v\t%v\n", m.UUID, m.Topic, m.Handler, m.Reason)
					}

					return nil
				},
			},
			{
				Name:      "remove",
				ArgsUsage: "<message_uuid>",
				Usage:     "drop a message from the poison queue",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("expected exactly one message uuid", 2)
					}

					q, err := newQueue(c)
					if err != nil {
						return err
					}

					return q.Remove(c.Context, c.Args().First())
				},
			},
			{
				Name:      "requeue",
				ArgsUsage: "<message_uuid>",
				Usage:     "publish a message back to its original topic",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("expected exactly one message uuid", 2)
					}

					q, err := newQueue(c)
					if err != nil {
						return err
					}

					return q.Requeue(c.Context, c.Args().First())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("poison-queue failed")
	}
}
