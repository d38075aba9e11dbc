// pkg/bot/state.go
package bot

// State is the controller's current behavioral mode. Progression is
// one-directional: InitialManoeuvre -> SearchLandingSite ->
// AlignWithSite -> Land. Land is terminal and self-looping; the episode
// ends externally on touchdown or crash.
type State int

const (
	StateInitialManoeuvre State = iota
	StateSearchLandingSite
	StateAlignWithSite
	StateLand
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateInitialManoeuvre:
		return "initial_manoeuvre"
	case StateSearchLandingSite:
		return "search_landing_site"
	case StateAlignWithSite:
		return "align_with_site"
	case StateLand:
		return "land"
	default:
		return "unknown"
	}
}
