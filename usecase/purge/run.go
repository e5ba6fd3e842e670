package purge

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/dnspurge/dnspurge/domain/model"
)

// RunInput holds parameters for one purge run.
type RunInput struct {
	Domain  string             `json:"domain"`            // required: zone to purge
	Types   []model.RecordType `json:"types"`             // required: validated, de-duplicated record types
	Delay   time.Duration      `json:"delay,omitempty"`   // pause between requests (single) or submissions (pooled)
	Threads int                `json:"threads,omitempty"` // worker count, 1 selects sequential mode

	// OnOutcome, when set, observes each outcome as it is collected.
	// Calls are serialized regardless of the worker count.
	OnOutcome func(model.PurgeOutcome) `json:"-"`
}

// RunOutput holds the collected results of a purge run.
type RunOutput struct {
	Result      *model.ResultSet `json:"result"`
	Submitted   int              `json:"submitted"`
	Interrupted bool             `json:"interrupted,omitempty"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  time.Time        `json:"finished_at"`
}

// Run dispatches one purge request per record type and collects the
// classified outcomes. Threads below 1 are clamped to 1 and a negative
// Delay to zero. With one thread requests go out sequentially with the
// delay between them; with more threads a worker pool serves a submission
// queue that is throttled by the delay. Cancelling ctx stops further
// submissions and the partial results are returned with Interrupted set.
func (u *UseCase) Run(ctx context.Context, in *RunInput) (*RunOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	if in.Domain == "" {
		return nil, fmt.Errorf("Domain is required")
	}
	if len(in.Types) == 0 {
		return nil, model.ErrNoValidTypes
	}

	delay := in.Delay
	if delay < 0 {
		delay = 0
	}
	threads := in.Threads
	if threads < 1 {
		threads = 1
	}

	out := &RunOutput{
		Result:    model.NewResultSet(in.Domain),
		StartedAt: time.Now(),
	}
	if threads > 1 {
		u.runPooled(ctx, in, out, delay, threads)
	} else {
		u.runSequential(ctx, in, out, delay)
	}
	out.FinishedAt = time.Now()
	out.Interrupted = ctx.Err() != nil
	return out, nil
}

// runSequential purges one type at a time, pausing between consecutive
// requests. The pause gets a small random jitter on top of the configured
// delay so retried runs do not hammer the API in lockstep.
func (u *UseCase) runSequential(ctx context.Context, in *RunInput, out *RunOutput, delay time.Duration) {
	for i, t := range in.Types {
		o := u.Purger.Purge(ctx, model.PurgeRequest{Domain: in.Domain, Type: t})
		out.Submitted++
		out.Result.Add(o)
		if in.OnOutcome != nil {
			in.OnOutcome(o)
		}
		if ctx.Err() != nil {
			return
		}
		if delay > 0 && i < len(in.Types)-1 {
			if !sleepContext(ctx, delay+jitter()) {
				return
			}
		}
	}
}

// runPooled feeds a queue served by a fixed pool of workers. The queue is
// buffered for the whole run so the submission loop is paced purely by the
// delay, never by worker backpressure.
func (u *UseCase) runPooled(ctx context.Context, in *RunInput, out *RunOutput, delay time.Duration, threads int) {
	workers := threads
	if workers > len(in.Types) {
		workers = len(in.Types)
	}
	jobs := make(chan model.PurgeRequest, len(in.Types))
	results := make(chan model.PurgeOutcome, len(in.Types))
	submitted := make(chan int, 1)

	go func() {
		defer close(jobs)
		n := 0
		for i, t := range in.Types {
			if ctx.Err() != nil {
				break
			}
			jobs <- model.PurgeRequest{Domain: in.Domain, Type: t}
			n++
			if delay > 0 && i < len(in.Types)-1 {
				if !sleepContext(ctx, delay) {
					break
				}
			}
		}
		submitted <- n
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range jobs {
				results <- u.Purger.Purge(ctx, req)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collecting on this goroutine keeps Result and OnOutcome single-writer.
	for o := range results {
		out.Result.Add(o)
		if in.OnOutcome != nil {
			in.OnOutcome(o)
		}
	}
	out.Submitted = <-submitted
}

func jitter() time.Duration {
	return 100*time.Millisecond + time.Duration(rand.Int63n(int64(200*time.Millisecond)))
}

// sleepContext pauses for d, returning false if ctx ends first.
func sleepContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
