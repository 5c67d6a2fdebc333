package htmlbuilder

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/atom"
)

type cellRule struct {
	row, col  int
	className string
}

// indexRule applies a class to a row or a column.
type indexRule struct {
	index     int
	className string
}

func withoutIndex(rules []indexRule, index int) []indexRule {
	kept := rules[:0]
	for _, r := range rules {
		if r.index != index {
			kept = append(kept, r)
		}
	}
	return kept
}

// Table is a table element whose rows and cells are built from a matrix of
// values each time it is rendered. Classes can be attached to single cells,
// rows and columns.
//
// A cell value is either a *Node with the tag td, which is used as the cell,
// or any other value which becomes the text of a new td node. A td node keeps
// a parent it has outside the table, and the same td may appear in several
// places of the matrix.
//
// The tbody is always present: ClearChildren and SetContent keep it, and
// Render attaches it again when it was removed.
type Table struct {
	*Node
	body      *Node
	rows      [][]interface{}
	cellRules []cellRule
	rowRules  []indexRule
	colRules  []indexRule
}

// NewTable creates a table with an empty tbody.
func NewTable(opts ...Option) *Table {
	n := newNode("table")
	t := &Table{Node: n}
	n.self = t
	n.apply(opts)
	t.body = n.AddElement("tbody")
	return t
}

// ClearChildren removes all children except the tbody.
func (t *Table) ClearChildren() {
	t.Node.ClearChildren()
	t.attachBody()
}

// SetContent replaces all children except the tbody by c. The tbody stays
// the last child.
func (t *Table) SetContent(c Child) error {
	t.Node.ClearChildren()
	_, err := t.Node.AddChild(c)
	t.attachBody()
	return err
}

// SetAttr sets an attribute like Node.SetAttr. Content keeps the tbody.
func (t *Table) SetAttr(name, value string) error {
	switch name {
	case "content", "innerHTML":
		return t.SetContent(Text(value))
	}
	return t.Node.SetAttr(name, value)
}

func (t *Table) attachBody() {
	if t.body.parent == t.Node {
		return
	}
	_, err := t.Node.AddChild(t.body)
	t.fail(err)
}

// Body returns the tbody node that holds the generated rows.
func (t *Table) Body() *Node {
	return t.body
}

// Rows returns the matrix.
func (t *Table) Rows() [][]interface{} {
	return t.rows
}

// SetMatrix replaces the matrix. The argument must be a slice (or array) of
// slices, for example [][]interface{}, [][]string or []interface{} holding
// slices. A [][]interface{} is stored as is.
func (t *Table) SetMatrix(matrix interface{}) ([][]interface{}, error) {
	if m, ok := matrix.([][]interface{}); ok {
		t.rows = m
		return m, nil
	}
	rows, err := toMatrix(matrix)
	if err != nil {
		return nil, err
	}
	t.rows = rows
	return rows, nil
}

func toMatrix(matrix interface{}) ([][]interface{}, error) {
	v := reflect.ValueOf(matrix)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, typeConstraint("set matrix", "matrix must be a slice of slices, not %T", matrix)
	}
	rows := make([][]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		rv := v.Index(i)
		if rv.Kind() == reflect.Interface {
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, typeConstraint("set matrix", "row %d must be a slice, not %s", i, rv.Kind())
		}
		row := make([]interface{}, rv.Len())
		for j := range row {
			row[j] = rv.Index(j).Interface()
		}
		rows[i] = row
	}
	return rows, nil
}

// AddRow appends a row and returns its index.
func (t *Table) AddRow(values ...interface{}) int {
	row := make([]interface{}, len(values))
	copy(row, values)
	t.rows = append(t.rows, row)
	return len(t.rows) - 1
}

// ColumnCount returns the length of the longest row.
func (t *Table) ColumnCount() int {
	cols := 0
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// AddCellClass adds className to the cell at row, col.
func (t *Table) AddCellClass(row, col int, className string) {
	t.cellRules = append(t.cellRules, cellRule{row: row, col: col, className: className})
}

// SetCellClass replaces the classes added to the cell at row, col.
func (t *Table) SetCellClass(row, col int, className string) {
	kept := t.cellRules[:0]
	for _, r := range t.cellRules {
		if r.row != row || r.col != col {
			kept = append(kept, r)
		}
	}
	t.cellRules = kept
	t.AddCellClass(row, col, className)
}

// AddRowClass adds className to the tr elements of the given rows.
func (t *Table) AddRowClass(className string, rows ...int) {
	for _, r := range rows {
		t.rowRules = append(t.rowRules, indexRule{index: r, className: className})
	}
}

// SetRowClass replaces the classes added to the given rows.
func (t *Table) SetRowClass(className string, rows ...int) {
	for _, r := range rows {
		t.rowRules = withoutIndex(t.rowRules, r)
		t.AddRowClass(className, r)
	}
}

// AddColClass adds className to every cell of the given columns.
func (t *Table) AddColClass(className string, cols ...int) {
	for _, c := range cols {
		t.colRules = append(t.colRules, indexRule{index: c, className: className})
	}
}

// SetColClass replaces the classes added to the given columns.
func (t *Table) SetColClass(className string, cols ...int) {
	for _, c := range cols {
		t.colRules = withoutIndex(t.colRules, c)
		t.AddColClass(className, c)
	}
}

func cellText(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case Text:
		return string(v), nil
	case Child:
		if isNilChild(v) {
			return "", nil
		}
		return v.Render(0)
	}
	return fmt.Sprint(value), nil
}

func (t *Table) cell(value interface{}) (*Node, error) {
	if c, ok := value.(Child); ok && !isNilChild(c) {
		if e := c.element(); e != nil {
			if err := t.Node.checkCycle("table cell", e); err != nil {
				return nil, err
			}
		}
	}
	if n, ok := value.(*Node); ok && n != nil && n.atom == atom.Td {
		return n, nil
	}
	s, err := cellText(value)
	if err != nil {
		return nil, err
	}
	return NewNode("td", WithText(s)), nil
}

// appendCell adds td to the derived row tr. Unlike AddChild it does not take
// td away from its parent. The parent link is only set if td has none or if
// it points to a row of this table.
func appendCell(tr, td *Node, rows map[*Node]bool) {
	tr.children = append(tr.children, td)
	if td.parent == nil || rows[td.parent] {
		td.parent = tr
	}
}

// materialize rebuilds the rows in tbody from the matrix.
func (t *Table) materialize() error {
	t.attachBody()
	rows := make(map[*Node]bool, len(t.body.children))
	for _, c := range t.body.children {
		if e := c.element(); e != nil {
			rows[e] = true
		}
	}
	t.body.ClearChildren()
	cols := t.ColumnCount()
	logrus.WithFields(logrus.Fields{
		"rows":    len(t.rows),
		"columns": cols,
		"id":      t.ID(),
	}).Debug("materialize table")

	for r, values := range t.rows {
		tr := t.body.AddElement("tr")
		rows[tr] = true
		for _, rule := range t.rowRules {
			if rule.index == r {
				tr.AddClass(rule.className)
			}
		}
		for c := 0; c < cols; c++ {
			var value interface{}
			if c < len(values) {
				value = values[c]
			}
			td, err := t.cell(value)
			if err != nil {
				return errors.Wrapf(err, "cell %d,%d", r, c)
			}
			for _, rule := range t.cellRules {
				if rule.row == r && rule.col == c {
					td.AddClass(rule.className)
				}
			}
			for _, rule := range t.colRules {
				if rule.index == c {
					td.AddClass(rule.className)
				}
			}
			appendCell(tr, td, rows)
		}
	}
	return nil
}

// Render rebuilds the rows from the matrix and renders the table.
func (t *Table) Render(level int) (string, error) {
	if t.err != nil {
		return "", errors.Wrap(t.err, "<table>")
	}
	if err := t.materialize(); err != nil {
		return "", errors.Wrap(err, "<table>")
	}
	return t.Node.Render(level)
}

// String renders the table at level 0. On error it logs the error at debug
// level and returns an empty string; use Render to get the error.
func (t *Table) String() string {
	s, err := t.Render(0)
	if err != nil {
		logrus.WithError(err).Debug("render table")
		return ""
	}
	return s
}

func (t *Table) element() *Node { return t.Node }
