package acconfig

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"ac_learner/internal/matrix"
)

// Field defaults applied to interactively created records only.
const (
	DefaultMinTemperature = 22
	DefaultMaxTemperature = 27
	DefaultPrecision      = 1
)

var (
	DefaultOperationModes = []string{"heat", "cool", "heat_cool", "dry", "fan_only"}
	DefaultFanModes       = []string{"quiet", "low", "med", "high", "turbo", "auto"}
	DefaultSwingModes     = []string{"stop", "swing"}
)

// Keys every persisted record must carry.
const (
	keyName           = "name"
	keyMinTemperature = "minTemperature"
	keyMaxTemperature = "maxTemperature"
	keyPrecision      = "precision"
	keyOperationModes = "operationModes"
	keyFanModes       = "fanModes"
	keySwingModes     = "swingModes"
	keyCommands       = "commands"
)

var requiredKeys = []string{
	keyName,
	keyMinTemperature,
	keyMaxTemperature,
	keyPrecision,
	keyOperationModes,
	keyFanModes,
	keySwingModes,
	keyCommands,
}

// Record is one AC unit configuration: its temperature bounds, the ordered
// mode labels shown in menus, and the learned command matrix.
type Record struct {
	Name           string        `json:"name" yaml:"name"`
	MinTemperature int           `json:"minTemperature" yaml:"min_temperature"`
	MaxTemperature int           `json:"maxTemperature" yaml:"max_temperature"`
	Precision      int           `json:"precision" yaml:"precision"`
	OperationModes []string      `json:"operationModes" yaml:"operation_modes,flow"`
	FanModes       []string      `json:"fanModes" yaml:"fan_modes,flow"`
	SwingModes     []string      `json:"swingModes" yaml:"swing_modes,flow"`
	Commands       matrix.Matrix `json:"commands" yaml:"-"`
}

// New returns a record populated with the interactive-creation defaults.
func New() *Record {
	return &Record{
		MinTemperature: DefaultMinTemperature,
		MaxTemperature: DefaultMaxTemperature,
		Precision:      DefaultPrecision,
		OperationModes: append([]string(nil), DefaultOperationModes...),
		FanModes:       append([]string(nil), DefaultFanModes...),
		SwingModes:     append([]string(nil), DefaultSwingModes...),
		Commands:       matrix.New(),
	}
}

// Temperatures returns the record's temperature labels in ascending order.
func (r *Record) Temperatures() []string {
	return matrix.TemperatureRange(r.MinTemperature, r.MaxTemperature, r.Precision)
}

// Learn stores a captured code at cell.
func (r *Record) Learn(c matrix.Cell, code string) {
	if r.Commands == nil {
		r.Commands = matrix.New()
	}
	r.Commands.Set(c.OperationMode, c.FanMode, c.SwingMode, c.Temperature, code)
}

// Validate checks the scalar fields and the mode lists. It does not check
// that matrix keys are listed modes, since labels may be edited after
// codes were learned.
func (r *Record) Validate() error {
	if r.Precision <= 0 {
		return malformed(r.Name, keyPrecision, "must be positive")
	}
	if r.MinTemperature > r.MaxTemperature {
		return malformed(r.Name, keyMinTemperature, "greater than maxTemperature")
	}
	if matrix.TemperatureSteps(r.MinTemperature, r.MaxTemperature, r.Precision) > matrix.MaxTemperatureSteps {
		return malformed(r.Name, keyMaxTemperature,
			fmt.Sprintf("range has more than %d temperatures", matrix.MaxTemperatureSteps))
	}
	for _, l := range []struct {
		key    string
		labels []string
	}{
		{keyOperationModes, r.OperationModes},
		{keyFanModes, r.FanModes},
		{keySwingModes, r.SwingModes},
	} {
		if err := validateLabels(r.Name, l.key, l.labels); err != nil {
			return err
		}
	}
	return nil
}

func validateLabels(name, key string, labels []string) error {
	if len(labels) == 0 {
		return malformed(name, key, "empty")
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l == "" {
			return malformed(name, key, "empty label")
		}
		if _, dup := seen[l]; dup {
			return malformed(name, key, fmt.Sprintf("duplicate label %q", l))
		}
		seen[l] = struct{}{}
	}
	return nil
}

func validateCodes(name string, m matrix.Matrix) error {
	for op, fans := range m {
		for fan, swings := range fans {
			for swing, temps := range swings {
				for temp, code := range temps {
					cell := matrix.Cell{OperationMode: op, FanMode: fan, SwingMode: swing, Temperature: temp}
					if code == "" {
						return malformed(name, keyCommands, "empty code at "+cell.String())
					}
					if _, err := base64.StdEncoding.DecodeString(code); err != nil {
						return malformed(name, keyCommands, "invalid base64 at "+cell.String())
					}
				}
			}
		}
	}
	return nil
}

// recordJSON avoids recursion through Record's JSON methods.
type recordJSON Record

// MarshalJSON writes the persisted layout. An unlearned record is written
// with an empty commands object rather than null.
func (r *Record) MarshalJSON() ([]byte, error) {
	out := recordJSON(*r)
	if out.Commands == nil {
		out.Commands = matrix.New()
	}
	return json.Marshal(out)
}

// UnmarshalJSON requires every persisted key; no defaults are applied.
// A null commands level reads as nothing learned there.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return malformed("", "", err.Error())
	}
	name := ""
	if raw, ok := fields[keyName]; ok {
		_ = json.Unmarshal(raw, &name)
	}
	for _, k := range requiredKeys {
		if _, ok := fields[k]; !ok {
			return malformed(name, k, "missing")
		}
	}

	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return malformed(name, "", err.Error())
	}
	if in.Commands == nil {
		in.Commands = matrix.New()
	}
	in.Commands.Prune()
	rec := Record(in)
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := validateCodes(rec.Name, rec.Commands); err != nil {
		return err
	}
	*r = rec
	return nil
}

// Load decodes one persisted record.
func Load(raw []byte) (*Record, error) {
	r := &Record{}
	if err := json.Unmarshal(raw, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ToSerializable returns the record in its persisted layout.
func (r *Record) ToSerializable() ([]byte, error) {
	return json.Marshal(r)
}
