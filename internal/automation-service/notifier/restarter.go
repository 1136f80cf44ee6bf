package notifier

import (
	"VCS_Node_Automation/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Restarter performs a single restart of the external monitoring process.
type Restarter interface {
	Restart(ctx context.Context) error
}

type restartCommand struct {
	Command     string    `json:"command"`
	Target      string    `json:"target"`
	RequestedAt time.Time `json:"requested_at"`
}

const monitorTarget = "monitor"

func newRestartCommand() ([]byte, error) {
	return json.Marshal(restartCommand{
		Command:     "restart",
		Target:      monitorTarget,
		RequestedAt: time.Now().UTC(),
	})
}

type execRestarter struct {
	name string
	args []string
}

func (e *execRestarter) Restart(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, e.name, e.args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("ExecRestarter.Restart: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// NewExecRestarter runs command through the local process manager, e.g. "pm2 restart monitor".
func NewExecRestarter(command string) (Restarter, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, errors.New("NewExecRestarter: empty restart command")
	}
	return &execRestarter{
		name: fields[0],
		args: fields[1:],
	}, nil
}

type kafkaRestarter struct {
	writer infra.KafkaWriter
}

func (k *kafkaRestarter) Restart(ctx context.Context) error {
	b, err := newRestartCommand()
	if err != nil {
		return fmt.Errorf("KafkaRestarter.Restart: %w", err)
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(monitorTarget),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("KafkaRestarter.Restart: %w", err)
	}
	return nil
}

func NewKafkaRestarter(writer infra.KafkaWriter) Restarter {
	return &kafkaRestarter{writer: writer}
}

type redisRestarter struct {
	client  *redis.Client
	channel string
}

func (r *redisRestarter) Restart(ctx context.Context) error {
	b, err := newRestartCommand()
	if err != nil {
		return fmt.Errorf("RedisRestarter.Restart: %w", err)
	}
	receivers, err := r.client.Publish(ctx, r.channel, b).Result()
	if err != nil {
		return fmt.Errorf("RedisRestarter.Restart: %w", err)
	}
	if receivers == 0 {
		return fmt.Errorf("RedisRestarter.Restart: no subscriber on channel %s", r.channel)
	}
	return nil
}

func NewRedisRestarter(client *redis.Client, channel string) Restarter {
	return &redisRestarter{
		client:  client,
		channel: channel,
	}
}
