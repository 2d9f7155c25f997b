package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"niri-select/internal/menu"
)

// CandidateRow is the serializable form of one candidate for yaml/json.
type CandidateRow struct {
	Label   string `yaml:"label"             json:"label"`
	ID      int64  `yaml:"id"                json:"id"`
	Kind    string `yaml:"kind"              json:"kind"`
	Tier    int    `yaml:"tier"              json:"tier"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
}

var focusMark = color.New(color.FgGreen, color.Bold)

// PrintCandidates writes the candidate list to stdout in the given format.
func PrintCandidates(cands []menu.Candidate, format Format) error {
	switch format {
	case FormatTable:
		printCandidatesTable(cands)
		return nil
	case FormatYAML:
		return PrintYAML(Rows(cands))
	case FormatJSON:
		return PrintJSON(Rows(cands))
	}
	return fmt.Errorf("unsupported format: %s", format)
}

func printCandidatesTable(cands []menu.Candidate) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("", "ID", "Tier", "Label")

	for _, c := range cands {
		mark := ""
		if c.Focused {
			mark = focusMark.Sprint("*")
		}
		table.Append(
			mark,
			fmt.Sprintf("%d", c.ID),
			fmt.Sprintf("%d", c.Tier),
			c.Label,
		)
	}

	table.Render()
}

// Rows converts candidates to their serializable form, in order.
func Rows(cands []menu.Candidate) []CandidateRow {
	rows := make([]CandidateRow, len(cands))
	for i, c := range cands {
		rows[i] = CandidateRow{
			Label:   c.Label,
			ID:      c.ID,
			Kind:    string(c.Kind),
			Tier:    c.Tier,
			Focused: c.Focused,
		}
	}
	return rows
}
