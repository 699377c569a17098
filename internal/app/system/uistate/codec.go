package uistate

import "encoding/json"

// stateJSON is the persisted form of State. The web layer stores one
// encoded State string per user session cookie.
type stateJSON struct {
	UserID      string      `json:"user_id,omitempty"`
	Role        string      `json:"role,omitempty"`
	ProfileName string      `json:"profile_name,omitempty"`
	Nav         string      `json:"nav,omitempty"`
	Filters     FilterState `json:"filters"`
	Generation  uint64      `json:"generation"`
}

// Encode serializes the state for storage in a session cookie.
func Encode(s State) (string, error) {
	b, err := json.Marshal(stateJSON{
		UserID:      s.Session.UserID,
		Role:        s.Session.Role,
		ProfileName: s.Session.ProfileName,
		Nav:         s.Nav,
		Filters:     s.Filters,
		Generation:  s.Generation,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode restores a state encoded with Encode. An empty input decodes to
// the Unauthenticated zero state.
func Decode(raw string) (State, error) {
	if raw == "" {
		return State{}, nil
	}
	var sj stateJSON
	if err := json.Unmarshal([]byte(raw), &sj); err != nil {
		return State{}, err
	}
	s := State{
		Session: Session{
			UserID:      sj.UserID,
			Role:        sj.Role,
			ProfileName: sj.ProfileName,
		},
		Nav:        sj.Nav,
		Filters:    sj.Filters,
		Generation: sj.Generation,
	}
	if s.Filters.selected == nil {
		s.Filters = NewFilterState()
	}
	return s, nil
}
