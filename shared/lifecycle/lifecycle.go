package lifecycle

import "sync/atomic"

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

var stateNames = map[ServerState]string{
	ServerStateReady:           "ready",
	ServerStateInGracePeriod:   "grace_period",
	ServerStateInCleanupPeriod: "cleanup_period",
}

func (s ServerState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return "starting"
}

// State is the server state shared between the HTTP server and its health endpoint.
type State struct {
	value atomic.Int32
}

func New() *State {
	return &State{}
}

func (s *State) Set(state ServerState) {
	s.value.Store(int32(state))
}

func (s *State) Get() ServerState {
	return ServerState(s.value.Load())
}

func (s *State) Ready() bool {
	return s.Get() == ServerStateReady
}
