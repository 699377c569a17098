// Package uistate models the top-level UI state as an explicit state
// machine with pure, reducer-style transitions. It knows nothing about
// HTTP, sessions, or templates; the web layer persists a State per user
// session and applies events to it.
//
// There are two states: Unauthenticated (zero Session) and Dashboard
// (Session set, with a selected nav section and filter state). Every
// transition bumps a monotonic Generation; data refreshes are tagged with
// the Generation they were started under, and results carrying a stale
// Generation are discarded rather than overwriting newer view state.
package uistate

// Session identifies the signed-in user. A zero UserID means
// unauthenticated.
type Session struct {
	UserID      string
	Role        string
	ProfileName string
}

// Nav section names, fixed. NavDashboard is the landing section.
const (
	NavDashboard = "dashboard"
	NavProducts  = "products"
)

// State is the complete top-level UI state for one user session.
type State struct {
	Session    Session
	Nav        string
	Filters    FilterState
	Generation uint64
}

// SignedIn reports whether the state is in the Dashboard state.
func (s State) SignedIn() bool {
	return s.Session.UserID != ""
}

// Event is a state transition input. Apply never mutates the receiver.
type Event interface {
	apply(State) State
}

// Apply returns the state after the event, with Generation advanced.
func (s State) Apply(ev Event) State {
	next := ev.apply(s)
	next.Generation = s.Generation + 1
	return next
}

// SignIn transitions to the Dashboard state with a fresh nav and empty
// filters. Any state left over from a previous session is discarded.
type SignIn struct {
	Session Session
}

func (e SignIn) apply(State) State {
	return State{
		Session: e.Session,
		Nav:     NavDashboard,
		Filters: NewFilterState(),
	}
}

// SignOut transitions back to Unauthenticated, clearing everything.
type SignOut struct{}

func (SignOut) apply(State) State {
	return State{}
}

// SelectNav switches the active sidebar section. Filters are kept; they
// only apply to the dashboard's operations table.
type SelectNav struct {
	Section string
}

func (e SelectNav) apply(s State) State {
	s.Nav = e.Section
	return s
}

// ToggleFilter flips membership of one option in one filter dimension.
// Applying the same event twice restores the original filter state.
type ToggleFilter struct {
	Dimension Dimension
	Option    string
}

func (e ToggleFilter) apply(s State) State {
	s.Filters = s.Filters.Toggle(e.Dimension, e.Option)
	return s
}
