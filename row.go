package parquetcore

import (
	"github.com/google/uuid"

	"github.com/rionmonster/parquetcore/deprecated"
)

// rowValueKind tags what a RowValue actually holds.
type rowValueKind int8

const (
	rvNull rowValueKind = iota
	rvScalar
	rvStruct
	rvList
	rvMap
)

// RowValue is one schema node's materialized content for a single row: a
// scalar, a null, or a nested struct/list/map, produced by the row
// assembler (spec.md §4.8). It replaces the teacher's reflect-based Object
// walk with a small tagged union dispatched through the schema tree, per
// SPEC_FULL.md's row view detail.
type RowValue struct {
	node    *ColumnNode
	kind    rowValueKind
	scalar  Value
	fields  []RowValue
	items   []RowValue
	entries []MapEntry
}

// MapEntry is one key/value pair of a materialized MAP column.
type MapEntry struct {
	Key   RowValue
	Value RowValue
}

func nullRowValue(node *ColumnNode) RowValue           { return RowValue{node: node, kind: rvNull} }
func scalarRowValue(node *ColumnNode, v Value) RowValue { return RowValue{node: node, kind: rvScalar, scalar: v} }
func structRowValue(node *ColumnNode, fields []RowValue) RowValue {
	return RowValue{node: node, kind: rvStruct, fields: fields}
}
func listRowValue(node *ColumnNode, items []RowValue) RowValue {
	return RowValue{node: node, kind: rvList, items: items}
}
func mapRowValue(node *ColumnNode, entries []MapEntry) RowValue {
	return RowValue{node: node, kind: rvMap, entries: entries}
}

// IsNull reports whether this value is null. It never errors: nullness is
// defined for every schema shape, unlike the typed accessors below.
func (v RowValue) IsNull() bool { return v.kind == rvNull }

func (v RowValue) physical() PhysicalType {
	if v.node == nil {
		return BooleanType
	}
	return v.node.Physical
}

func (v RowValue) checkPhysical(want PhysicalType) error {
	if v.node == nil || !v.node.HasPhysical || v.node.Physical != want {
		return Errorf(TypeMismatch, nil, "column %q has physical type %s, not %s", v.nodeName(), v.physical(), want)
	}
	return nil
}

func (v RowValue) nodeName() string {
	if v.node == nil {
		return "<unknown>"
	}
	return v.node.Name
}

// Bool returns the value as BOOLEAN. TypeMismatch if the column isn't
// BOOLEAN; the zero value if the column is null.
func (v RowValue) Bool() (bool, error) {
	if err := v.checkPhysical(BooleanType); err != nil {
		return false, err
	}
	if v.kind == rvNull {
		return false, nil
	}
	return v.scalar.Boolean(), nil
}

// Int32 returns the value as INT32.
func (v RowValue) Int32() (int32, error) {
	if err := v.checkPhysical(Int32Type); err != nil {
		return 0, err
	}
	if v.kind == rvNull {
		return 0, nil
	}
	return v.scalar.Int32(), nil
}

// Int64 returns the value as INT64.
func (v RowValue) Int64() (int64, error) {
	if err := v.checkPhysical(Int64Type); err != nil {
		return 0, err
	}
	if v.kind == rvNull {
		return 0, nil
	}
	return v.scalar.Int64(), nil
}

// Int96 returns the value as the deprecated INT96 type, 12 raw bytes (spec.md
// §9's Open Question: no timestamp interpretation here).
func (v RowValue) Int96() (deprecated.Int96, error) {
	if err := v.checkPhysical(Int96Type); err != nil {
		return deprecated.Int96{}, err
	}
	if v.kind == rvNull {
		return deprecated.Int96{}, nil
	}
	return v.scalar.Int96(), nil
}

// Float returns the value as FLOAT.
func (v RowValue) Float() (float32, error) {
	if err := v.checkPhysical(FloatType); err != nil {
		return 0, err
	}
	if v.kind == rvNull {
		return 0, nil
	}
	return v.scalar.Float(), nil
}

// Double returns the value as DOUBLE.
func (v RowValue) Double() (float64, error) {
	if err := v.checkPhysical(DoubleType); err != nil {
		return 0, err
	}
	if v.kind == rvNull {
		return 0, nil
	}
	return v.scalar.Double(), nil
}

// Bytes returns the value's raw BYTE_ARRAY/FIXED_LEN_BYTE_ARRAY bytes.
func (v RowValue) Bytes() ([]byte, error) {
	if v.node == nil || !v.node.HasPhysical || (v.node.Physical != ByteArrayType && v.node.Physical != FixedLenByteArrayType) {
		return nil, Errorf(TypeMismatch, nil, "column %q is not a byte array type", v.nodeName())
	}
	if v.kind == rvNull {
		return nil, nil
	}
	return v.scalar.ByteArray(), nil
}

// String returns the value's bytes decoded as UTF-8, for STRING-annotated
// BYTE_ARRAY columns (also accepted for unannotated byte arrays, matching
// the teacher's permissive Value.String()).
func (v RowValue) String() (string, error) {
	b, err := v.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UUID parses the value as a UUID-annotated FIXED_LEN_BYTE_ARRAY(16) column,
// returning its canonical hyphenated string form. TypeMismatch if the column
// isn't tagged UUIDLogicalType or the stored array isn't 16 bytes wide.
func (v RowValue) UUID() (string, error) {
	if v.node == nil || !v.node.HasPhysical || v.node.Physical != FixedLenByteArrayType || v.node.Logical.Kind != UUIDLogicalType {
		return "", Errorf(TypeMismatch, nil, "column %q is not a UUID", v.nodeName())
	}
	if v.kind == rvNull {
		return "", nil
	}
	b := v.scalar.ByteArray()
	id, err := uuid.FromBytes(b)
	if err != nil {
		return "", Errorf(TypeMismatch, err, "column %q: malformed UUID bytes", v.nodeName())
	}
	return id.String(), nil
}

// Row returns a nested struct view. TypeMismatch if this column isn't a
// group shaped like a ROW (i.e. not LIST/MAP-annotated).
func (v RowValue) Row() (*RowView, error) {
	if v.node == nil || !v.node.IsGroup() || v.node.IsList() || v.node.IsMap() {
		return nil, Errorf(TypeMismatch, nil, "column %q is not a ROW", v.nodeName())
	}
	if v.kind == rvNull {
		return newRowView(v.node.Children, make([]RowValue, len(v.node.Children))), nil
	}
	return newRowView(v.node.Children, v.fields), nil
}

// List returns this column's elements as a PqList. TypeMismatch if the
// column isn't LIST-shaped.
func (v RowValue) List() (*PqList, error) {
	if v.node == nil || !v.node.IsList() {
		return nil, Errorf(TypeMismatch, nil, "column %q is not a LIST", v.nodeName())
	}
	return &PqList{items: v.items}, nil
}

// Map returns this column's entries as a PqMap. TypeMismatch if the column
// isn't MAP-shaped.
func (v RowValue) Map() (*PqMap, error) {
	if v.node == nil || !v.node.IsMap() {
		return nil, Errorf(TypeMismatch, nil, "column %q is not a MAP", v.nodeName())
	}
	return &PqMap{entries: v.entries}, nil
}

// RowView is a typed, positional-and-by-name accessor over one group's
// materialized fields: the top-level row, or a nested struct returned by
// RowValue.Row (spec.md §6's RowReader/Row accessor surface).
type RowView struct {
	children []*ColumnNode
	fields   []RowValue
}

func newRowView(children []*ColumnNode, fields []RowValue) *RowView {
	return &RowView{children: children, fields: fields}
}

// Row is the top-level materialized record a RowReader yields.
type Row = RowView

// ColumnCount returns the number of fields this view projects.
func (r *RowView) ColumnCount() int { return len(r.fields) }

// ColumnName returns the name of field i.
func (r *RowView) ColumnName(i int) (string, error) {
	if i < 0 || i >= len(r.children) {
		return "", Errorf(IndexOutOfRange, nil, "column index %d out of range", i)
	}
	return r.children[i].Name, nil
}

func (r *RowView) indexOf(name string) (int, error) {
	for i, c := range r.children {
		if c.Name == name {
			return i, nil
		}
	}
	return -1, Errorf(FieldNotFound, nil, "field %q not found", name)
}

// resolve looks up a field by either its positional index (int) or its name
// (string); any other locator type is a caller error.
func (r *RowView) resolve(loc any) (RowValue, error) {
	switch l := loc.(type) {
	case int:
		if l < 0 || l >= len(r.fields) {
			return RowValue{}, Errorf(IndexOutOfRange, nil, "column index %d out of range", l)
		}
		return r.fields[l], nil
	case string:
		i, err := r.indexOf(l)
		if err != nil {
			return RowValue{}, err
		}
		return r.fields[i], nil
	default:
		return RowValue{}, Errorf(RangeError, nil, "invalid column locator %T", loc)
	}
}

// IsNull reports whether the field at loc (index or name) is null.
func (r *RowView) IsNull(loc any) (bool, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return false, err
	}
	return v.IsNull(), nil
}

func (r *RowView) GetBool(loc any) (bool, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return false, err
	}
	return v.Bool()
}

func (r *RowView) GetInt32(loc any) (int32, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return 0, err
	}
	return v.Int32()
}

func (r *RowView) GetInt64(loc any) (int64, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return 0, err
	}
	return v.Int64()
}

func (r *RowView) GetInt96(loc any) (deprecated.Int96, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return deprecated.Int96{}, err
	}
	return v.Int96()
}

func (r *RowView) GetFloat(loc any) (float32, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return 0, err
	}
	return v.Float()
}

func (r *RowView) GetDouble(loc any) (float64, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return 0, err
	}
	return v.Double()
}

func (r *RowView) GetString(loc any) (string, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return "", err
	}
	return v.String()
}

func (r *RowView) GetBytes(loc any) ([]byte, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return nil, err
	}
	return v.Bytes()
}

// GetRow returns a nested struct view for field loc.
func (r *RowView) GetRow(loc any) (*RowView, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return nil, err
	}
	return v.Row()
}

// GetList returns field loc's elements as a PqList.
func (r *RowView) GetList(loc any) (*PqList, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return nil, err
	}
	return v.List()
}

// GetMap returns field loc's entries as a PqMap.
func (r *RowView) GetMap(loc any) (*PqMap, error) {
	v, err := r.resolve(loc)
	if err != nil {
		return nil, err
	}
	return v.Map()
}

// PqList is a typed, positional view over one LIST column's elements for a
// single row (spec.md §6).
type PqList struct {
	items []RowValue
}

// Size returns the number of elements.
func (l *PqList) Size() int { return len(l.items) }

// IsEmpty reports whether the list has no elements.
func (l *PqList) IsEmpty() bool { return len(l.items) == 0 }

func (l *PqList) at(i int) (RowValue, error) {
	if i < 0 || i >= len(l.items) {
		return RowValue{}, Errorf(IndexOutOfRange, nil, "list index %d out of range", i)
	}
	return l.items[i], nil
}

// IsNull reports whether element i is null.
func (l *PqList) IsNull(i int) (bool, error) {
	v, err := l.at(i)
	if err != nil {
		return false, err
	}
	return v.IsNull(), nil
}

func (l *PqList) GetBool(i int) (bool, error) {
	v, err := l.at(i)
	if err != nil {
		return false, err
	}
	return v.Bool()
}

func (l *PqList) GetInt32(i int) (int32, error) {
	v, err := l.at(i)
	if err != nil {
		return 0, err
	}
	return v.Int32()
}

func (l *PqList) GetInt64(i int) (int64, error) {
	v, err := l.at(i)
	if err != nil {
		return 0, err
	}
	return v.Int64()
}

func (l *PqList) GetFloat(i int) (float32, error) {
	v, err := l.at(i)
	if err != nil {
		return 0, err
	}
	return v.Float()
}

func (l *PqList) GetDouble(i int) (float64, error) {
	v, err := l.at(i)
	if err != nil {
		return 0, err
	}
	return v.Double()
}

func (l *PqList) GetString(i int) (string, error) {
	v, err := l.at(i)
	if err != nil {
		return "", err
	}
	return v.String()
}

func (l *PqList) GetBytes(i int) ([]byte, error) {
	v, err := l.at(i)
	if err != nil {
		return nil, err
	}
	return v.Bytes()
}

// GetRow returns element i as a nested struct view, for LIST<ROW> columns.
func (l *PqList) GetRow(i int) (*RowView, error) {
	v, err := l.at(i)
	if err != nil {
		return nil, err
	}
	return v.Row()
}

// PqMap is a typed, positional view over one MAP column's entries for a
// single row (spec.md §6).
type PqMap struct {
	entries []MapEntry
}

// Size returns the number of entries.
func (m *PqMap) Size() int { return len(m.entries) }

// IsEmpty reports whether the map has no entries.
func (m *PqMap) IsEmpty() bool { return len(m.entries) == 0 }

func (m *PqMap) at(i int) (MapEntry, error) {
	if i < 0 || i >= len(m.entries) {
		return MapEntry{}, Errorf(IndexOutOfRange, nil, "map entry index %d out of range", i)
	}
	return m.entries[i], nil
}

func (m *PqMap) KeyString(i int) (string, error) {
	e, err := m.at(i)
	if err != nil {
		return "", err
	}
	return e.Key.String()
}

func (m *PqMap) KeyInt32(i int) (int32, error) {
	e, err := m.at(i)
	if err != nil {
		return 0, err
	}
	return e.Key.Int32()
}

func (m *PqMap) KeyInt64(i int) (int64, error) {
	e, err := m.at(i)
	if err != nil {
		return 0, err
	}
	return e.Key.Int64()
}

func (m *PqMap) ValueBool(i int) (bool, error) {
	e, err := m.at(i)
	if err != nil {
		return false, err
	}
	return e.Value.Bool()
}

func (m *PqMap) ValueInt32(i int) (int32, error) {
	e, err := m.at(i)
	if err != nil {
		return 0, err
	}
	return e.Value.Int32()
}

func (m *PqMap) ValueInt64(i int) (int64, error) {
	e, err := m.at(i)
	if err != nil {
		return 0, err
	}
	return e.Value.Int64()
}

func (m *PqMap) ValueFloat(i int) (float32, error) {
	e, err := m.at(i)
	if err != nil {
		return 0, err
	}
	return e.Value.Float()
}

func (m *PqMap) ValueDouble(i int) (float64, error) {
	e, err := m.at(i)
	if err != nil {
		return 0, err
	}
	return e.Value.Double()
}

func (m *PqMap) ValueString(i int) (string, error) {
	e, err := m.at(i)
	if err != nil {
		return "", err
	}
	return e.Value.String()
}

func (m *PqMap) ValueRow(i int) (*RowView, error) {
	e, err := m.at(i)
	if err != nil {
		return nil, err
	}
	return e.Value.Row()
}

// IsValueNull reports whether entry i's value is null.
func (m *PqMap) IsValueNull(i int) (bool, error) {
	e, err := m.at(i)
	if err != nil {
		return false, err
	}
	return e.Value.IsNull(), nil
}
