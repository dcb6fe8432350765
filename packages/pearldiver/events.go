package pearldiver

import (
	"time"

	"github.com/iotaledger/hive.go/generics/event"
)

// Events contains the events triggered by a PearlDiver.
type Events struct {
	// SearchStarted is triggered when a search starts.
	SearchStarted *event.Event[*SearchStartedEvent]
	// SearchCompleted is triggered when a nonce was found.
	SearchCompleted *event.Event[*SearchStoppedEvent]
	// SearchCancelled is triggered when a search ended without a nonce.
	SearchCancelled *event.Event[*SearchStoppedEvent]
}

func newEvents() *Events {
	return &Events{
		SearchStarted:   event.New[*SearchStartedEvent](),
		SearchCompleted: event.New[*SearchStoppedEvent](),
		SearchCancelled: event.New[*SearchStoppedEvent](),
	}
}

// SearchStartedEvent is the payload of Events.SearchStarted.
type SearchStartedEvent struct {
	MinWeightMagnitude int
	NumberOfThreads    int
}

// SearchStoppedEvent is the payload of Events.SearchCompleted and Events.SearchCancelled.
type SearchStoppedEvent struct {
	MinWeightMagnitude int
	NumberOfThreads    int
	Duration           time.Duration
	// Transforms is the number of bit-sliced Curl transforms, each testing 64 nonces.
	Transforms uint64
}
