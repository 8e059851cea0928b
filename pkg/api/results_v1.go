// pkg/api/results_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one encoded record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Session   string   `json:"session"`
	ID        string   `json:"id"`
	Source    string   `json:"source,omitempty"`
	Line      int      `json:"line,omitempty"`
	Rotors    []string `json:"rotors"`
	Reflector string   `json:"reflector"`
	Start     string   `json:"start"` // window letters before the first key
	End       string   `json:"end"`   // window letters after the last key
	Letters   int      `json:"letters"`
	Output    string   `json:"output"`
}

// RotorV1 describes one wheel in a state dump.
type RotorV1 struct {
	Slot      int    `json:"slot"`
	Name      string `json:"name"`
	Wiring    string `json:"wiring"`
	Turnovers string `json:"turnovers"`
	Offset    int    `json:"offset"`
	Window    string `json:"window"`
}

// StateV1 is the stable schema for a machine state dump.
type StateV1 struct {
	Rotors    []RotorV1 `json:"rotors"`
	Reflector string    `json:"reflector"`
	Wiring    string    `json:"reflector_wiring"`
	Positions string    `json:"positions"`
	Table     string    `json:"table"`
}
