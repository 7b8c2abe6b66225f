package socketerr

type (
	// Table maps result codes to categories. Implementations must be safe
	// for concurrent use, and side-effect free. Unmapped codes must return
	// Unknown.
	Table interface {
		Lookup(code Code) Category
	}

	// TableFunc implements Table.
	TableFunc func(code Code) Category

	// MapTable implements Table, using a map. It must not be modified after
	// first use.
	MapTable map[Code]Category

	chainTable []Table
)

var (
	// compile time assertions

	_ Table = TableFunc(nil)
	_ Table = MapTable(nil)
	_ Table = chainTable(nil)
)

func (x TableFunc) Lookup(code Code) Category { return x(code) }

func (x MapTable) Lookup(code Code) Category { return x[code] }

// Chain returns a Table that consults each of tables in order, returning
// the first category that isn't Unknown. Nil tables are skipped.
func Chain(tables ...Table) Table {
	var c chainTable
	for _, t := range tables {
		if t != nil {
			c = append(c, t)
		}
	}
	return c
}

func (x chainTable) Lookup(code Code) Category {
	for _, t := range x {
		if c := t.Lookup(code); c != Unknown {
			return c
		}
	}
	return Unknown
}
