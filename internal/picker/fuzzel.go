package picker

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"niri-select/internal/logging"
)

// Fuzzel runs the fuzzel launcher in dmenu mode. Labels go in on stdin, the
// chosen label comes back on stdout.
type Fuzzel struct {
	bin string
}

// NewFuzzel checks that fuzzel is reachable.
func NewFuzzel() (*Fuzzel, error) {
	path, err := exec.LookPath("fuzzel")
	if err != nil {
		return nil, fmt.Errorf("fuzzel not found in PATH: %w", err)
	}
	return &Fuzzel{bin: path}, nil
}

func (f *Fuzzel) Pick(lines []string, opts Options) (string, error) {
	args := []string{"--dmenu", "--prompt", opts.Prompt + ": "}
	// Passthrough args win over our defaults.
	if !hasFlag(opts.Extra, "--match-mode") {
		args = append(args, "--match-mode=fuzzy")
	}
	if opts.Width > 0 && !hasWidthFlag(opts.Extra) {
		args = append(args, fmt.Sprintf("--width=%d", opts.Width))
	}
	if opts.Select != "" {
		args = append(args, "--select", opts.Select)
	}
	args = append(args, opts.Extra...)

	logging.Debug().Strs("args", args).Int("lines", len(lines)).Msg("invoking fuzzel")

	cmd := exec.Command(f.bin, args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	output, err := cmd.Output()
	choice := strings.TrimSuffix(string(output), "\n")

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && choice == "" {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("fuzzel: %w", err)
	}
	if choice == "" {
		return "", ErrCancelled
	}
	return choice, nil
}

func hasFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag || strings.HasPrefix(arg, flag+"=") {
			return true
		}
	}
	return false
}

func hasWidthFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-w" || strings.HasPrefix(arg, "-w=") ||
			arg == "--width" || strings.HasPrefix(arg, "--width=") {
			return true
		}
	}
	return false
}
