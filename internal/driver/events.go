package driver

// Stage identifies where in the pipeline a progress event was emitted.
type Stage uint8

const (
	StageLoad Stage = iota
	StageExpand
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageExpand:
		return "expand"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event is one progress notification from a directory run.
type Event struct {
	Stage Stage
	Path  string
	Done  int // files finished so far, StageExpand/StageDone only
	Total int
	Err   error
}

// Sink receives progress events. Publish is called from worker goroutines
// and must be safe for concurrent use.
type Sink interface {
	Publish(Event)
}

// NopSink drops all events.
type NopSink struct{}

func (NopSink) Publish(Event) {}

// ChannelSink forwards events into a channel, dropping them when the
// receiver falls behind so workers never block on the UI.
type ChannelSink struct {
	C chan Event
}

func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{C: make(chan Event, buffer)}
}

func (s *ChannelSink) Publish(e Event) {
	select {
	case s.C <- e:
	default:
	}
}

// Close signals the receiver that no more events follow.
func (s *ChannelSink) Close() {
	close(s.C)
}
