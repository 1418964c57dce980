package parquetcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowViewTypedAccessors(t *testing.T) {
	idNode := leafNode("id", Int32Type, Required, 0, 0)
	nameNode := leafNode("name", ByteArrayType, Optional, 1, 0)
	children := []*ColumnNode{idNode, nameNode}
	fields := []RowValue{
		scalarRowValue(idNode, Int32Value(7, 0, 0)),
		nullRowValue(nameNode),
	}
	row := newRowView(children, fields)

	id, err := row.GetInt32(0)
	require.NoError(t, err)
	assert.Equal(t, int32(7), id)

	idByName, err := row.GetInt32("id")
	require.NoError(t, err)
	assert.Equal(t, int32(7), idByName)

	isNull, err := row.IsNull("name")
	require.NoError(t, err)
	assert.True(t, isNull)

	name, err := row.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

// TestRowViewTypeMismatchLeavesReaderUsable verifies that calling a
// mistyped accessor fails with TypeMismatch but doesn't corrupt the view:
// a subsequent correct call on the same field, or another field, still
// succeeds.
func TestRowViewTypeMismatchLeavesReaderUsable(t *testing.T) {
	nameNode := leafNode("name", ByteArrayType, Required, 0, 0)
	row := newRowView([]*ColumnNode{nameNode}, []RowValue{scalarRowValue(nameNode, ByteArrayValue([]byte("hi"), 0, 0))})

	_, err := row.GetInt32("name")
	require.Error(t, err)
	assert.True(t, Is(err, TypeMismatch))

	s, err := row.GetString("name")
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestRowViewFieldNotFound(t *testing.T) {
	node := leafNode("id", Int32Type, Required, 0, 0)
	row := newRowView([]*ColumnNode{node}, []RowValue{scalarRowValue(node, Int32Value(1, 0, 0))})
	_, err := row.GetInt32("missing")
	require.Error(t, err)
	assert.True(t, Is(err, FieldNotFound))
}

func TestRowViewIndexOutOfRange(t *testing.T) {
	node := leafNode("id", Int32Type, Required, 0, 0)
	row := newRowView([]*ColumnNode{node}, []RowValue{scalarRowValue(node, Int32Value(1, 0, 0))})
	_, err := row.GetInt32(5)
	require.Error(t, err)
	assert.True(t, Is(err, IndexOutOfRange))
}

func TestPqListAccessors(t *testing.T) {
	elem := leafNode("element", ByteArrayType, Required, 2, 1)
	list := &PqList{items: []RowValue{
		scalarRowValue(elem, ByteArrayValue([]byte("a"), 2, 0)),
		scalarRowValue(elem, ByteArrayValue([]byte("b"), 2, 1)),
	}}
	assert.Equal(t, 2, list.Size())
	assert.False(t, list.IsEmpty())

	s0, err := list.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "a", s0)

	_, err = list.GetInt32(0)
	require.Error(t, err)
	assert.True(t, Is(err, TypeMismatch))

	_, err = list.GetString(9)
	require.Error(t, err)
	assert.True(t, Is(err, IndexOutOfRange))
}

func TestPqMapAccessors(t *testing.T) {
	keyNode := leafNode("key", ByteArrayType, Required, 1, 1)
	valNode := leafNode("value", Int32Type, Optional, 2, 1)
	m := &PqMap{entries: []MapEntry{
		{Key: scalarRowValue(keyNode, ByteArrayValue([]byte("a"), 1, 0)), Value: scalarRowValue(valNode, Int32Value(1, 2, 0))},
		{Key: scalarRowValue(keyNode, ByteArrayValue([]byte("b"), 1, 1)), Value: nullRowValue(valNode)},
	}}

	assert.Equal(t, 2, m.Size())
	k0, err := m.KeyString(0)
	require.NoError(t, err)
	assert.Equal(t, "a", k0)

	v0, err := m.ValueInt32(0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v0)

	isNull, err := m.IsValueNull(1)
	require.NoError(t, err)
	assert.True(t, isNull)
}

func TestRowValueRowOnNonGroupFails(t *testing.T) {
	node := leafNode("id", Int32Type, Required, 0, 0)
	v := scalarRowValue(node, Int32Value(1, 0, 0))
	_, err := v.Row()
	require.Error(t, err)
	assert.True(t, Is(err, TypeMismatch))
}
