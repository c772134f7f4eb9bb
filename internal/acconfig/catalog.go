package acconfig

// Catalog is the ordered set of records owned by one session. Names are
// not required to be unique; interactive selection is by position.
type Catalog struct {
	records []*Record
}

// NewCatalog wraps records in their given order.
func NewCatalog(records ...*Record) *Catalog {
	return &Catalog{records: records}
}

// Add appends r and reports whether another record already uses its name.
func (c *Catalog) Add(r *Record) (duplicate bool) {
	_, duplicate = c.Find(r.Name)
	c.records = append(c.records, r)
	return duplicate
}

func (c *Catalog) Len() int { return len(c.records) }

// At returns the record at position i.
func (c *Catalog) At(i int) *Record { return c.records[i] }

// Records returns the records in order. The slice is shared.
func (c *Catalog) Records() []*Record { return c.records }

// Names returns the record names in order, for menus.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.records))
	for i, r := range c.records {
		names[i] = r.Name
	}
	return names
}

// Find returns the first record named name.
func (c *Catalog) Find(name string) (*Record, bool) {
	for _, r := range c.records {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}
