package weather

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/zmwangx/debounce"

	"github.com/dashtab/dashtab/internal/model"
)

const (
	// PollInterval is how often conditions refresh while the widget is shown
	PollInterval = 5 * time.Minute

	// LocationDebounce delays a refetch after the location setting changes
	LocationDebounce = 800 * time.Millisecond
)

// Poller drives periodic weather refreshes. Callbacks run on the poller's
// goroutine; callers marshal onto the UI thread themselves and must register
// them before the first Start.
type Poller struct {
	client *Client

	mu       sync.Mutex
	onUpdate func(model.WeatherData)
	onError  func(error)
	hint     string
	done     chan struct{}
	interval time.Duration

	refetch       func()
	cancelRefetch func()
}

// NewPoller creates a poller over the given client
func NewPoller(client *Client) *Poller {
	p := &Poller{
		client:   client,
		interval: PollInterval,
	}

	refetch, ctrl := debounce.Debounce(func() {
		p.fetchNow()
	}, LocationDebounce)
	p.refetch = refetch
	p.cancelRefetch = ctrl.Cancel

	return p
}

// SetOnUpdate registers the callback receiving fresh readings
func (p *Poller) SetOnUpdate(onUpdate func(model.WeatherData)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = onUpdate
}

// SetOnError registers the callback receiving failed refreshes
func (p *Poller) SetOnError(onError func(error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onError = onError
}

// SetInterval overrides the poll interval
func (p *Poller) SetInterval(interval time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.interval = interval
}

// Start fetches immediately and then refreshes on the poll interval.
// Starting an already-started poller restarts it.
func (p *Poller) Start(locationHint string) {
	p.Stop()

	p.mu.Lock()
	p.hint = locationHint
	p.done = make(chan struct{})
	done := p.done
	interval := p.interval
	p.mu.Unlock()

	go func() {
		p.fetchNow()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.fetchNow()
			case <-done:
				return
			}
		}
	}()
}

// SetLocation updates the location hint and schedules a debounced refetch
func (p *Poller) SetLocation(locationHint string) {
	p.mu.Lock()
	p.hint = locationHint
	running := p.done != nil
	p.mu.Unlock()

	if running {
		p.refetch()
	}
}

// Stop halts polling and drops any pending debounced refetch. Responses
// already in flight are discarded.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.done != nil {
		close(p.done)
		p.done = nil
	}
	p.mu.Unlock()

	p.cancelRefetch()
}

// fetchNow performs one fetch and dispatches the result, unless the poller
// stopped while the request was in flight.
func (p *Poller) fetchNow() {
	p.mu.Lock()
	hint := p.hint
	done := p.done
	onUpdate := p.onUpdate
	onError := p.onError
	p.mu.Unlock()

	if done == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	data, err := p.client.Fetch(ctx, hint)

	select {
	case <-done:
		return
	default:
	}

	if err != nil {
		log.Printf("Weather refresh failed: %v", err)
		if onError != nil {
			onError(err)
		}
		return
	}
	if onUpdate != nil {
		onUpdate(data)
	}
}
