package analysis

// EventType identifies a lifecycle event emitted by a coordinator
type EventType string

const (
	EventAnalysisStarted  EventType = "analysis-started"
	EventFrameExtracted   EventType = "frame-extracted"
	EventAnalysisComplete EventType = "analysis-complete"
	EventError            EventType = "error"
)

// Event is one lifecycle notification. Frame/Total are set for
// frame-extracted, Result for analysis-complete, Err/Stage for error.
type Event struct {
	Type   EventType
	Frame  int
	Total  int
	Result any
	Err    error
	Stage  string
}

// EventHandler receives lifecycle events. Handlers are invoked from the
// coordinator's worker goroutine and must not block.
type EventHandler func(Event)
