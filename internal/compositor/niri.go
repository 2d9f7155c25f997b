package compositor

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"niri-select/internal/logging"
	"niri-select/internal/model"
)

// Niri talks to the niri compositor through its `niri msg` CLI, reading
// state as JSON and dispatching focus actions.
type Niri struct {
	bin string
}

// NewNiri checks that the niri binary is reachable.
func NewNiri() (*Niri, error) {
	path, err := exec.LookPath("niri")
	if err != nil {
		return nil, fmt.Errorf("niri not found in PATH: %w", err)
	}
	logging.Debug().Str("path", path).Msg("found niri")
	return &Niri{bin: path}, nil
}

func (n *Niri) Snapshot() (*model.Snapshot, error) {
	winAttrs, err := n.msgJSON("windows")
	if err != nil {
		return nil, err
	}
	wsAttrs, err := n.msgJSON("workspaces")
	if err != nil {
		return nil, err
	}

	windows := make([]model.Window, len(winAttrs))
	for i, attrs := range winAttrs {
		windows[i] = model.WindowFromAttrs(attrs)
	}
	workspaces := make([]model.Workspace, len(wsAttrs))
	for i, attrs := range wsAttrs {
		workspaces[i] = model.WorkspaceFromAttrs(attrs)
	}

	logging.Debug().
		Int("windows", len(windows)).
		Int("workspaces", len(workspaces)).
		Msg("snapshot read")
	return model.NewSnapshot(windows, workspaces), nil
}

func (n *Niri) FocusWindow(id int64) error {
	return n.action("focus-window", "--id", strconv.FormatInt(id, 10))
}

func (n *Niri) FocusWorkspace(ws model.Workspace) error {
	if ws.Output != "" {
		if err := n.action("focus-monitor", ws.Output); err != nil {
			return err
		}
	}
	return n.action("focus-workspace", strconv.FormatInt(ws.Idx, 10))
}

// msgJSON runs `niri msg --json <what>` and decodes the array of objects.
func (n *Niri) msgJSON(what string) ([]map[string]any, error) {
	cmd := exec.Command(n.bin, "msg", "--json", what)
	output, err := cmd.Output()
	if err != nil {
		logging.Error().Err(err).Str("query", what).Msg("niri msg failed")
		return nil, fmt.Errorf("%w: niri msg %s: %v", ErrSnapshotUnavailable, what, err)
	}
	return decodeEntities(output, what)
}

func decodeEntities(data []byte, what string) ([]map[string]any, error) {
	var entities []map[string]any
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("%w: decoding niri msg %s output: %v", ErrSnapshotUnavailable, what, err)
	}
	return entities, nil
}

func (n *Niri) action(args ...string) error {
	full := append([]string{"msg", "action"}, args...)
	logging.Debug().Strs("args", full).Msg("dispatching niri action")

	cmd := exec.Command(n.bin, full...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("niri msg action %s: %w: %s", args[0], err, output)
	}
	return nil
}
