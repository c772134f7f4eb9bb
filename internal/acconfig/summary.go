package acconfig

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Summary is the human-readable view of a record printed by List configs.
type Summary struct {
	Index   int            `json:"index" yaml:"index"`
	Record  Record         `json:"config" yaml:",inline"`
	Learned int            `json:"learned" yaml:"learned"`
	Cells   int            `json:"cells" yaml:"cells"`
	ByMode  map[string]int `json:"learned_by_mode,omitempty" yaml:"learned_by_mode,omitempty"`
}

// Summarize counts the learned cells of r against the cells its mode lists
// and temperature range define.
func Summarize(i int, r *Record) Summary {
	s := Summary{
		Index:   i,
		Record:  *r,
		Learned: r.Commands.Len(),
		Cells:   len(r.OperationModes) * len(r.FanModes) * len(r.SwingModes) * len(r.Temperatures()),
	}
	for op, fans := range r.Commands {
		n := 0
		for _, swings := range fans {
			for _, temps := range swings {
				n += len(temps)
			}
		}
		if n > 0 {
			if s.ByMode == nil {
				s.ByMode = make(map[string]int)
			}
			s.ByMode[op] = n
		}
	}
	return s
}

// WriteSummaries renders every record of c as a YAML document stream.
func WriteSummaries(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for i, r := range c.Records() {
		if err := enc.Encode(Summarize(i, r)); err != nil {
			return err
		}
	}
	return enc.Close()
}
