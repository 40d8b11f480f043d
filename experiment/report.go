package experiment

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstwalk/walk"
)

// Report is the outcome of one Run.
type Report struct {
	RunID     string       `yaml:"run_id"`
	N         int          `yaml:"n"`
	Edges     int          `yaml:"edges"`
	Seed      int64        `yaml:"seed"`
	Connected bool         `yaml:"connected"`
	MST       []MSTOutcome `yaml:"mst"`
	Walks     []Outcome    `yaml:"walks"`
}

// MSTOutcome describes one MST computation.
type MSTOutcome struct {
	Algorithm   string        `yaml:"algorithm"`
	Connected   bool          `yaml:"connected"`
	TotalWeight float64       `yaml:"total_weight"`
	TreeEdges   int           `yaml:"tree_edges"`
	Elapsed     time.Duration `yaml:"elapsed"`
}

// Outcome describes one walk on one structure.
type Outcome struct {
	Structure   string        `yaml:"structure"`
	Walk        string        `yaml:"walk"`
	Steps       int           `yaml:"steps"`
	TotalWeight float64       `yaml:"total_weight"`
	Visited     int           `yaml:"visited"`
	Requested   int           `yaml:"requested"`
	Complete    bool          `yaml:"complete"`
	Stopped     string        `yaml:"stopped,omitempty"`
	Elapsed     time.Duration `yaml:"elapsed"`
	Skipped     string        `yaml:"skipped,omitempty"`
	Trace       []walk.Step   `yaml:"trace,omitempty"`
}

// Outcome returns the walk outcome for (structure, walk name).
func (r *Report) Outcome(structure, name string) (Outcome, bool) {
	for _, o := range r.Walks {
		if o.Structure == structure && o.Walk == name {
			return o, true
		}
	}

	return Outcome{}, false
}

// WriteYAML encodes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

// WriteText renders the report as aligned columns: one row per MST and one
// "steps weight visited/N elapsed" row per walk.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\n", r.RunID)
	fmt.Fprintf(tw, "n=%d\tedges=%d\tseed=%d\tconnected=%t\n", r.N, r.Edges, r.Seed, r.Connected)
	for _, m := range r.MST {
		if !m.Connected {
			fmt.Fprintf(tw, "mst\t%s\tdisconnected\t\t%s\n", m.Algorithm, m.Elapsed)
			continue
		}
		fmt.Fprintf(tw, "mst\t%s\t%g\t%d edges\t%s\n", m.Algorithm, m.TotalWeight, m.TreeEdges, m.Elapsed)
	}
	for _, o := range r.Walks {
		if o.Skipped != "" {
			fmt.Fprintf(tw, "%s\t%s\tskipped: %s\n", o.Structure, o.Walk, o.Skipped)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%d/%d\t%s\t%s\n",
			o.Structure, o.Walk, o.Steps, o.TotalWeight, o.Visited, o.Requested, o.Elapsed, o.Stopped)
	}

	return tw.Flush()
}

// WriteReports renders several reports in the given format ("text" or "yaml").
// YAML output is one document per report.
func WriteReports(w io.Writer, format string, reports []*Report) error {
	for i, rep := range reports {
		var err error
		switch format {
		case FormatYAML:
			if i > 0 {
				_, err = io.WriteString(w, "---\n")
			}
			if err == nil {
				err = rep.WriteYAML(w)
			}
		case FormatText:
			if i > 0 {
				_, err = io.WriteString(w, "\n")
			}
			if err == nil {
				err = rep.WriteText(w)
			}
		default:
			return fmt.Errorf("experiment: unknown format %q", format)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Output formats accepted by WriteReports.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)
