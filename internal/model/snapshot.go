package model

// Snapshot is one consistent read of compositor state. It is built once per
// invocation and never mutated; every later stage takes it as an argument so
// filtering and ranking stay pure functions of their inputs.
type Snapshot struct {
	Windows    []Window
	Workspaces []Workspace

	windowsByID    map[int64]int
	workspacesByID map[int64]int
	focusedWindow  int
	focusedWS      int
}

// NewSnapshot builds a Snapshot and precomputes its id and focus indexes.
func NewSnapshot(windows []Window, workspaces []Workspace) *Snapshot {
	s := &Snapshot{
		Windows:        windows,
		Workspaces:     workspaces,
		windowsByID:    make(map[int64]int, len(windows)),
		workspacesByID: make(map[int64]int, len(workspaces)),
		focusedWindow:  -1,
		focusedWS:      -1,
	}
	for i, w := range windows {
		s.windowsByID[w.ID] = i
		if w.IsFocused && s.focusedWindow < 0 {
			s.focusedWindow = i
		}
	}
	for i, ws := range workspaces {
		s.workspacesByID[ws.ID] = i
		if ws.IsFocused && s.focusedWS < 0 {
			s.focusedWS = i
		}
	}
	return s
}

// FocusedWindow returns the focused window, or nil if no window has focus.
func (s *Snapshot) FocusedWindow() *Window {
	if s.focusedWindow < 0 {
		return nil
	}
	return &s.Windows[s.focusedWindow]
}

// FocusedWorkspace returns the focused workspace, or nil if none is focused.
func (s *Snapshot) FocusedWorkspace() *Workspace {
	if s.focusedWS < 0 {
		return nil
	}
	return &s.Workspaces[s.focusedWS]
}

// FocusedOutput returns the output owning the focused workspace, or "".
func (s *Snapshot) FocusedOutput() string {
	if ws := s.FocusedWorkspace(); ws != nil {
		return ws.Output
	}
	return ""
}

// ActiveWorkspaces returns the workspaces currently visible on their outputs.
func (s *Snapshot) ActiveWorkspaces() []Workspace {
	var active []Workspace
	for _, ws := range s.Workspaces {
		if ws.IsActive {
			active = append(active, ws)
		}
	}
	return active
}

// WindowByID looks up a window by its compositor id.
func (s *Snapshot) WindowByID(id int64) (Window, bool) {
	i, ok := s.windowsByID[id]
	if !ok {
		return Window{}, false
	}
	return s.Windows[i], true
}

// WorkspaceByID looks up a workspace by its compositor id.
func (s *Snapshot) WorkspaceByID(id int64) (Workspace, bool) {
	i, ok := s.workspacesByID[id]
	if !ok {
		return Workspace{}, false
	}
	return s.Workspaces[i], true
}
