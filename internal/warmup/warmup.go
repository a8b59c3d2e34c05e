// Package warmup keeps Lambda containers warm. A scheduled rule sends
// {"source":"warmup","concurrency":N}; the receiving container answers
// without touching the database and asynchronously invokes N more copies
// of the function so that N+1 containers stay initialized.
package warmup

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"language_connect/internal/gateway"
	"language_connect/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

const (
	Source = "warmup"

	// overlap keeps this container busy while the copies start, so they
	// land on separate containers
	overlap = 75 * time.Millisecond
)

type Event struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

type Status struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       Status `json:"body"`
}

// Invoker is the part of the Lambda API client used for self-invocation.
type Invoker interface {
	Invoke(ctx context.Context, in *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

type Warmer struct {
	functionName string
	newInvoker   func(ctx context.Context) (Invoker, error)
	delay        time.Duration
}

// New returns a Warmer for the named function. The AWS client is only
// created when a warmup asks for extra copies.
func New(functionName string) *Warmer {
	return &Warmer{
		functionName: functionName,
		newInvoker: func(ctx context.Context) (Invoker, error) {
			cfg, err := config.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, fmt.Errorf("load aws config: %w", err)
			}
			return lambdasdk.NewFromConfig(cfg), nil
		},
		delay: overlap,
	}
}

// Parse reports whether raw is a warmup event.
func Parse(raw json.RawMessage) (*Event, bool) {
	var ev Event
	if err := json.Unmarshal(raw, &ev); err != nil || ev.Source != Source {
		return nil, false
	}
	if ev.Concurrency < 0 {
		ev.Concurrency = 0
	}
	return &ev, true
}

func (w *Warmer) Handle(ctx context.Context, ev *Event) Result {
	warmed := 1
	if ev.Concurrency > 0 {
		if err := w.invokeCopies(ctx, ev.Concurrency); err != nil {
			logger.Warn("warmup self-invoke failed", "function", w.functionName, "error", err)
		} else {
			warmed += ev.Concurrency
		}
	}

	time.Sleep(w.delay)
	return Result{StatusCode: 200, Body: Status{Status: "warm", InstancesWarmed: warmed}}
}

func (w *Warmer) invokeCopies(ctx context.Context, n int) error {
	if w.functionName == "" {
		return fmt.Errorf("function name not set")
	}
	client, err := w.newInvoker(ctx)
	if err != nil {
		return err
	}

	// copies get concurrency 0 so they do not fan out again
	payload, err := json.Marshal(Event{Source: Source})
	if err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(w.functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// Lambda builds the raw-event entry point for lambda.Start. Warmup events
// are answered first; everything else is decoded as an API Gateway proxy
// request and passed to next.
func Lambda(w *Warmer, next gateway.EventHandler) func(ctx context.Context, raw json.RawMessage) (any, error) {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		if ev, ok := Parse(raw); ok {
			return w.Handle(ctx, ev), nil
		}

		var req gateway.Event
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("decode proxy event: %w", err)
		}
		return next(ctx, req)
	}
}
