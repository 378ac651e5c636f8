package eventengine

import (
	"fmt"
	"sync"

	"github.com/luxloom/storefront-backend/internal/eventengine/event"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(event *event.Event) error
}

type Subscriber interface {
	Subscribe(toEventName event.EventName, subscriber *event.Subscriber) error
}

type RegisterPublisher interface {
	Publisher
	RegisterEvents(eventNames ...event.EventName)
}

type SubscribeRegisterPublisher interface {
	Subscriber
	RegisterPublisher
}

type subscribers struct {
	names      []event.SubscriberName
	addressChs []chan<- any
}

type EventEngineConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
	Log           *zap.Logger
}

// eventEngine is the in-process pub/sub hub. Features register the events they
// emit, subscribers hand over a channel, and the engine fans published
// payloads out to every subscriber of that event. Registration and
// subscription happen during server wiring, before the first publish, so the
// events map is never mutated concurrently.
type eventEngine struct {
	*EventEngineConfig
	eventEngineCh chan *event.Event
	events        map[event.EventName]*subscribers
}

func NewEventEngine(cfg *EventEngineConfig) SubscribeRegisterPublisher {
	if cfg == nil || cfg.DoneCh == nil || cfg.InternalSrvWG == nil || cfg.Log == nil {
		panic("eventengine: config, DoneCh, InternalSrvWG and Log are all required")
	}

	e := &eventEngine{
		EventEngineConfig: cfg,
		events:            make(map[event.EventName]*subscribers, 20),
		eventEngineCh:     make(chan *event.Event, 20),
	}

	e.InternalSrvWG.Add(1)
	go e.listen()

	return e
}

func (e *eventEngine) listen() {
	defer e.InternalSrvWG.Done()

	e.Log.Info("event engine is listening")

	for {
		select {
		case <-e.DoneCh:
			close(e.eventEngineCh)

			// drain anything published before shutdown was signalled
			for ev := range e.eventEngineCh {
				e.broadcast(ev)
			}

			e.closeSubscriberChannels()
			e.Log.Info("event engine has shut down")
			return

		case ev, isOpened := <-e.eventEngineCh:
			if !isOpened {
				return
			}

			e.broadcast(ev)
		}
	}
}

func (e *eventEngine) broadcast(ev *event.Event) {
	subs, exists := e.events[ev.Name]
	if !exists {
		e.Log.Warn(
			"event has no registration, dropping",
			zap.String("event", string(ev.Name)),
		)
		return
	}

	for i, addressCh := range subs.addressChs {
		if addressCh == nil {
			e.Log.Warn(
				"subscriber addressCh is nil, skipping",
				zap.String("subscriber", string(subs.names[i])),
			)
			continue
		}

		addressCh <- ev.Payload
	}
}

// RegisterEvents adds all events a publisher can publish to the engine.
//
// IMPORTANT: Register an event before you try to publish or subscribe to it.
func (e *eventEngine) RegisterEvents(eventNames ...event.EventName) {
	for _, eventName := range eventNames {
		if _, exists := e.events[eventName]; exists {
			continue
		}

		e.events[eventName] = &subscribers{}
	}
}

func (e *eventEngine) Subscribe(toEventName event.EventName, newSubscriber *event.Subscriber) error {
	subs, ok := e.events[toEventName]
	if !ok {
		return fmt.Errorf(
			"event '%v' not found. the publishing service must call RegisterEvents before anyone subscribes",
			toEventName,
		)
	}

	subs.names = append(subs.names, newSubscriber.Name)
	subs.addressChs = append(subs.addressChs, newSubscriber.AddressCh)

	return nil
}

func (e *eventEngine) Publish(ev *event.Event) error {
	if _, exists := e.events[ev.Name]; !exists {
		return fmt.Errorf(
			"event %v not found. the publishing service must call RegisterEvents first",
			ev.Name,
		)
	}

	e.eventEngineCh <- ev

	return nil
}

func (e *eventEngine) closeSubscriberChannels() {
	closed := make(map[chan<- any]bool)

	for _, subs := range e.events {
		for _, addressCh := range subs.addressChs {
			if addressCh == nil || closed[addressCh] {
				continue
			}

			close(addressCh)
			closed[addressCh] = true
		}
	}
}
