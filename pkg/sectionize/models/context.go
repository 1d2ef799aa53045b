package models

// PeriodColumnMap maps a period key to the ordered column indices it covers.
// Keys keep the order in which they were first registered.
type PeriodColumnMap struct {
	keys []string
	cols map[string][]int
}

// Add appends col to the columns registered under key.
func (m *PeriodColumnMap) Add(key string, col int) {
	if m.cols == nil {
		m.cols = make(map[string][]int)
	}
	if _, ok := m.cols[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.cols[key] = append(m.cols[key], col)
}

// Keys returns the period keys in registration order.
func (m PeriodColumnMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Columns returns the column indices registered under key.
func (m PeriodColumnMap) Columns(key string) []int {
	cols := m.cols[key]
	out := make([]int, len(cols))
	copy(out, cols)
	return out
}

// Len returns the number of period keys.
func (m PeriodColumnMap) Len() int { return len(m.keys) }

// IsEmpty reports whether no period was registered.
func (m PeriodColumnMap) IsEmpty() bool { return len(m.keys) == 0 }

// Context is the extraction state carried from one block to the next within a
// sheet. It is treated as a value: strategies derive a new one rather than
// modifying the one they receive.
type Context struct {
	// Columns is the period column mapping of the last detected header.
	Columns PeriodColumnMap
	// Title is the section title that goes with Columns.
	Title string
	// Months is the month list of the last monthly particulars header.
	Months []string
}

// HasColumns reports whether a period mapping is available for continuation.
func (c Context) HasColumns() bool { return !c.Columns.IsEmpty() }

// WithoutColumns drops the period mapping and title, keeping the month list.
func (c Context) WithoutColumns() Context {
	return Context{Months: c.Months}
}
