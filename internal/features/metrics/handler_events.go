package metrics

import (
	"sync"

	"github.com/luxloom/storefront-backend/internal/eventengine"
	"github.com/luxloom/storefront-backend/internal/eventengine/event"
	"go.uber.org/zap"
)

// subscriberName is the name of this event handler.
const subscriberName event.SubscriberName = "handler_event.metrics"

type HandlerEventsConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
	EventEngine   eventengine.Subscriber
	Log           *zap.Logger
	AddressChSize uint16
}

// handlerEvents turns order lifecycle events into prometheus counter
// updates, keeping the order feature free of any metrics dependency.
type handlerEvents struct {
	*HandlerEventsConfig
	addressCh chan any
}

func NewHandlerEvents(cfg *HandlerEventsConfig) *handlerEvents {
	if cfg.AddressChSize == 0 {
		cfg.AddressChSize = 10
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil || cfg.EventEngine == nil || cfg.Log == nil {
		panic("metrics handler events: DoneCh, InternalSrvWG, EventEngine and Log are all required")
	}

	he := &handlerEvents{
		HandlerEventsConfig: cfg,
		addressCh:           make(chan any, cfg.AddressChSize),
	}

	he.addSubscriptions()

	he.InternalSrvWG.Add(1)
	go he.listen()

	return he
}

func (h *handlerEvents) listen() {
	defer h.InternalSrvWG.Done()

	h.Log.Info("metrics event handler is listening")

	// a for-select is not needed here because the event engine closes the
	// addressCh at shutdown
	for newEvent := range h.addressCh {
		switch ne := newEvent.(type) {
		case *event.OrderCreatedEvent:
			ordersCreatedTotal.Inc()
			orderedQuantityTotal.Add(float64(ne.Quantity))

		case *event.OrderDeletedEvent:
			ordersDeletedTotal.Inc()

		default:
			h.Log.Warn(
				"received unknown event type",
				zap.String("subscriber", string(subscriberName)),
			)
		}
	}

	h.Log.Info("metrics event handler has shut down")
}

// addSubscriptions subscribes this handler's addressCh to every order event
// it counts.
func (h *handlerEvents) addSubscriptions() {
	subscribeToEventNames := [2]event.EventName{
		event.OrderCreatedEventName,
		event.OrderDeletedEventName,
	}

	for _, eventName := range subscribeToEventNames {
		err := h.EventEngine.Subscribe(
			eventName,
			&event.Subscriber{
				Name:      subscriberName,
				AddressCh: h.addressCh,
			},
		)
		if err != nil {
			h.Log.Fatal(
				"failed to subscribe to events",
				zap.String("subscriber", string(subscriberName)),
				zap.Error(err),
			)
		}
	}
}
