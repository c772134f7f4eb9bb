package matrix

// TempTable maps a temperature label to a captured code (base64 text).
type TempTable map[string]string

// SwingTable maps a swing mode to its temperature table.
type SwingTable map[string]TempTable

// FanTable maps a fan mode to its swing table.
type FanTable map[string]SwingTable

// Matrix is the learned command matrix:
// operation mode -> fan mode -> swing mode -> temperature -> code.
//
// Every level is partial; an absent entry means "not learned yet".
// Intermediate levels are created only when a descendant cell is written.
// A nil Matrix can be read but not written, use New.
type Matrix map[string]FanTable

// New returns an empty, writable matrix.
func New() Matrix {
	return make(Matrix)
}

// Set writes code at the given cell, creating missing or nil levels.
// An existing code at the cell is replaced.
func (m Matrix) Set(op, fan, swing, temp, code string) {
	fans := m[op]
	if fans == nil {
		fans = make(FanTable)
		m[op] = fans
	}
	swings := fans[fan]
	if swings == nil {
		swings = make(SwingTable)
		fans[fan] = swings
	}
	temps := swings[swing]
	if temps == nil {
		temps = make(TempTable)
		swings[swing] = temps
	}
	temps[temp] = code
}

// Prune drops nil levels, as decoded from JSON null, and reports whether
// any were found. Empty levels are kept.
func (m Matrix) Prune() bool {
	pruned := false
	for op, fans := range m {
		if fans == nil {
			delete(m, op)
			pruned = true
			continue
		}
		for fan, swings := range fans {
			if swings == nil {
				delete(fans, fan)
				pruned = true
				continue
			}
			for swing, temps := range swings {
				if temps == nil {
					delete(swings, swing)
					pruned = true
				}
			}
		}
	}
	return pruned
}

// Get looks up the code at the given cell.
func (m Matrix) Get(op, fan, swing, temp string) (string, bool) {
	code, ok := m[op][fan][swing][temp]
	return code, ok
}

// Lookup is Get addressed by Cell.
func (m Matrix) Lookup(c Cell) (string, bool) {
	return m.Get(c.OperationMode, c.FanMode, c.SwingMode, c.Temperature)
}

// FanMode returns the swing table learned for (op, fan). An empty table
// counts as absent.
func (m Matrix) FanMode(op, fan string) (SwingTable, bool) {
	swings := m[op][fan]
	if countSwings(swings) == 0 {
		return nil, false
	}
	return swings, true
}

// CopyFanMode installs a deep copy of the (srcOp, srcFan) subtree at
// (dstOp, dstFan), replacing whatever was learned there. The matrix is
// left untouched when the source has nothing learned.
func (m Matrix) CopyFanMode(srcOp, srcFan, dstOp, dstFan string) error {
	src, ok := m.FanMode(srcOp, srcFan)
	if !ok {
		return &NotLearnedError{Cell: Cell{OperationMode: srcOp, FanMode: srcFan}}
	}
	if srcOp == dstOp && srcFan == dstFan {
		return nil
	}
	cp := src.clone()
	fans := m[dstOp]
	if fans == nil {
		fans = make(FanTable)
		m[dstOp] = fans
	}
	fans[dstFan] = cp
	return nil
}

// FillTemperatures copies the code at (op, fan, swing, srcTemp) to every
// label in temps that has no code yet. Learned temperatures are never
// overwritten. It returns the labels that were filled.
func (m Matrix) FillTemperatures(op, fan, swing, srcTemp string, temps []string) ([]string, error) {
	code, ok := m.Get(op, fan, swing, srcTemp)
	if !ok {
		return nil, &NotLearnedError{Cell: Cell{OperationMode: op, FanMode: fan, SwingMode: swing, Temperature: srcTemp}}
	}
	table := m[op][fan][swing]
	var filled []string
	for _, t := range temps {
		if _, exists := table[t]; exists {
			continue
		}
		table[t] = code
		filled = append(filled, t)
	}
	return filled, nil
}

// Len returns the number of learned cells.
func (m Matrix) Len() int {
	n := 0
	for _, fans := range m {
		for _, swings := range fans {
			n += countSwings(swings)
		}
	}
	return n
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for op, fans := range m {
		fc := make(FanTable, len(fans))
		for fan, swings := range fans {
			fc[fan] = swings.clone()
		}
		out[op] = fc
	}
	return out
}

func (s SwingTable) clone() SwingTable {
	out := make(SwingTable, len(s))
	for swing, temps := range s {
		tc := make(TempTable, len(temps))
		for t, code := range temps {
			tc[t] = code
		}
		out[swing] = tc
	}
	return out
}

func countSwings(s SwingTable) int {
	n := 0
	for _, temps := range s {
		n += len(temps)
	}
	return n
}
