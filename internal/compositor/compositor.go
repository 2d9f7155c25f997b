package compositor

import (
	"errors"

	"niri-select/internal/model"
)

// ErrSnapshotUnavailable wraps any failure to read or decode compositor
// state. Nothing downstream runs on a partial snapshot.
var ErrSnapshotUnavailable = errors.New("compositor state unavailable")

// Client is the compositor collaborator: one consistent state read plus the
// two activation actions. The core never re-queries mid-computation.
type Client interface {
	// Snapshot reads windows, workspaces, and focus state in one go.
	Snapshot() (*model.Snapshot, error)
	// FocusWindow switches focus to the window with the given id.
	FocusWindow(id int64) error
	// FocusWorkspace switches to the given workspace, moving focus to its
	// output first when the workspace names one.
	FocusWorkspace(ws model.Workspace) error
}
