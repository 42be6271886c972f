package sqlseg

var _ Part = Table{}

// Table is the table name with optional alias.
type Table struct {
	Name, Alias string
}

// NewTable returns a new Table.
//
// Table is a Part, but appends only the applied name,
// since it's more common to use it to qualify columns, e.g.:
//
//	t := NewTable("table", "t")
//	SQL(t.Column("id"), "=", V(1))  // `t`.`id` = ?
//
// If you want to build fragments like `table AS t`, use t.TableAs().
//
//	SQL("LEFT JOIN", t.TableAs())  // LEFT JOIN `table` AS `t`
func NewTable(name string, alias ...string) Table {
	aliasName := ""
	if len(alias) > 0 {
		aliasName = alias[0]
	}
	return Table{
		Name:  name,
		Alias: aliasName,
	}
}

// IsZero reports whether the table is zero.
func (t Table) IsZero() bool {
	return t.Name == "" && t.Alias == ""
}

// WithAlias returns a new Table with updated alias.
func (t Table) WithAlias(alias string) Table {
	return Table{
		Name:  t.Name,
		Alias: alias,
	}
}

// AppliedName returns the alias if it is not empty, otherwise returns the name.
func (t Table) AppliedName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// Column returns a column of the table, qualified by the applied name.
//
//	NewTable("table", "t").Column("id")  // `t`.`id`
func (t Table) Column(name string) Identifier {
	return Ident(t.AppliedName(), name)
}

// Columns returns columns of the table from names, see Column.
func (t Table) Columns(names ...string) []Identifier {
	r := make([]Identifier, 0, len(names))
	for _, name := range names {
		r = append(r, t.Column(name))
	}
	return r
}

// AllColumns returns all columns of the table, e.g.: `t`.*
func (t Table) AllColumns() Literal {
	return Literal{text: Ident(t.AppliedName()).Literal().text + ".*"}
}

// TableAs returns a segment like `table` AS `t`, or `table` if
// the table has no alias.
func (t Table) TableAs() Segment {
	if t.Alias == "" {
		return SQL(Ident(t.Name))
	}
	return SQL(Ident(t.Name), "AS", Ident(t.Alias))
}

func (t Table) appendTo(b *builder) {
	Ident(t.AppliedName()).appendTo(b)
}
