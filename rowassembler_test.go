package parquetcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rionmonster/parquetcore/internal/format"
)

// buildLeafCursor wraps a single hand-crafted DataPageV1Kind page for node
// in a ColumnChunkCursor, the same machinery a real file's page scanner
// would feed the row assembler.
func buildLeafCursor(t *testing.T, node *ColumnNode, body []byte, valueCount int) *ColumnChunkCursor {
	t.Helper()
	source := memorySource(body)
	chunk := newTestColumnChunk(node, format.Uncompressed)
	info := &PageInfo{
		Kind:             DataPageV1Kind,
		Offset:           0,
		CompressedSize:   int64(len(body)),
		UncompressedSize: int64(len(body)),
		ValueCount:       int64(valueCount),
		ValueEncoding:    format.Plain,
	}
	pc := NewPageCursor(source, node, chunk, []*PageInfo{info})
	return NewColumnChunkCursor(node, pc)
}

func TestRowAssemblerFlatColumns(t *testing.T) {
	idNode := leafNode("id", Int32Type, Required, 0, 0)
	nameNode := leafNode("name", ByteArrayType, Optional, 1, 0)
	root := &ColumnNode{Name: "root", ColumnIndex: -1, Children: []*ColumnNode{idNode, nameNode}}
	idNode.Parent, nameNode.Parent = root, root
	assignLeafIndexes(root)
	schema := &FileSchema{Root: root}
	schema.leaves = root.Leaves()

	idBody := encodePlainInt32([]int32{1, 2, 3})
	nameDefs := encodeLevelStreamV1(1, []rleRun{{Value: 1, Count: 1}, {Value: 0, Count: 1}, {Value: 1, Count: 1}})
	nameVals := encodePlainByteArray([]string{"a", "c"})
	nameBody := append(append([]byte{}, nameDefs...), nameVals...)

	cursors := map[int]*ColumnChunkCursor{
		idNode.ColumnIndex:   buildLeafCursor(t, idNode, idBody, 3),
		nameNode.ColumnIndex: buildLeafCursor(t, nameNode, nameBody, 3),
	}
	assembler := NewRowAssembler(schema, cursors)

	var ids []int32
	var names []string
	var nulls []bool
	for {
		has, err := assembler.HasNext()
		require.NoError(t, err)
		if !has {
			break
		}
		row, err := assembler.Next()
		require.NoError(t, err)
		id, err := row.GetInt32("id")
		require.NoError(t, err)
		ids = append(ids, id)
		isNull, err := row.IsNull("name")
		require.NoError(t, err)
		nulls = append(nulls, isNull)
		name, err := row.GetString("name")
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.Equal(t, []int32{1, 2, 3}, ids)
	assert.Equal(t, []bool{false, true, false}, nulls)
	assert.Equal(t, []string{"a", "", "c"}, names)
}

func TestRowAssemblerNestedStruct(t *testing.T) {
	xNode := leafNode("x", Int32Type, Required, 0, 0)
	yNode := leafNode("y", Int32Type, Required, 0, 0)
	point := &ColumnNode{Name: "point", ColumnIndex: -1, Children: []*ColumnNode{xNode, yNode}}
	root := &ColumnNode{Name: "root", ColumnIndex: -1, Children: []*ColumnNode{point}}
	point.Parent = root
	xNode.Parent, yNode.Parent = point, point
	assignLeafIndexes(root)
	schema := &FileSchema{Root: root}
	schema.leaves = root.Leaves()

	xBody := encodePlainInt32([]int32{1, 3})
	yBody := encodePlainInt32([]int32{2, 4})
	cursors := map[int]*ColumnChunkCursor{
		xNode.ColumnIndex: buildLeafCursor(t, xNode, xBody, 2),
		yNode.ColumnIndex: buildLeafCursor(t, yNode, yBody, 2),
	}
	assembler := NewRowAssembler(schema, cursors)

	row1, err := assembler.Next()
	require.NoError(t, err)
	p1, err := row1.GetRow("point")
	require.NoError(t, err)
	x1, err := p1.GetInt32("x")
	require.NoError(t, err)
	y1, err := p1.GetInt32("y")
	require.NoError(t, err)
	assert.Equal(t, int32(1), x1)
	assert.Equal(t, int32(2), y1)

	row2, err := assembler.Next()
	require.NoError(t, err)
	p2, err := row2.GetRow("point")
	require.NoError(t, err)
	x2, _ := p2.GetInt32("x")
	y2, _ := p2.GetInt32("y")
	assert.Equal(t, int32(3), x2)
	assert.Equal(t, int32(4), y2)

	has, err := assembler.HasNext()
	require.NoError(t, err)
	assert.False(t, has)
}

// TestRowAssemblerList reconstructs a LIST<STRING> column across three
// records: a 3-element list, an empty list, and a null list, using the
// canonical rep/def level pattern for the 3-level LIST encoding.
func TestRowAssemblerList(t *testing.T) {
	element := leafNode("element", ByteArrayType, Required, 2, 1)
	list := &ColumnNode{Name: "list", ColumnIndex: -1, Repetition: Repeated, MaxDefinitionLevel: 2, MaxRepetitionLevel: 1, Children: []*ColumnNode{element}}
	tags := &ColumnNode{Name: "tags", ColumnIndex: -1, Repetition: Optional, MaxDefinitionLevel: 1, MaxRepetitionLevel: 0, Children: []*ColumnNode{list}}
	root := &ColumnNode{Name: "root", ColumnIndex: -1, Children: []*ColumnNode{tags}}
	tags.Parent = root
	list.Parent = tags
	element.Parent = list
	assignLeafIndexes(root)
	schema := &FileSchema{Root: root}
	schema.leaves = root.Leaves()

	repStream := encodeLevelStreamV1(1, []rleRun{{Value: 0, Count: 1}, {Value: 1, Count: 2}, {Value: 0, Count: 2}})
	defStream := encodeLevelStreamV1(2, []rleRun{{Value: 2, Count: 3}, {Value: 1, Count: 1}, {Value: 0, Count: 1}})
	values := encodePlainByteArray([]string{"a", "b", "c"})
	body := append(append(append([]byte{}, repStream...), defStream...), values...)

	cursors := map[int]*ColumnChunkCursor{
		element.ColumnIndex: buildLeafCursor(t, element, body, 5),
	}
	assembler := NewRowAssembler(schema, cursors)

	row0, err := assembler.Next()
	require.NoError(t, err)
	list0, err := row0.GetList("tags")
	require.NoError(t, err)
	require.Equal(t, 3, list0.Size())
	s0, _ := list0.GetString(0)
	s1, _ := list0.GetString(1)
	s2, _ := list0.GetString(2)
	assert.Equal(t, []string{"a", "b", "c"}, []string{s0, s1, s2})

	row1, err := assembler.Next()
	require.NoError(t, err)
	list1, err := row1.GetList("tags")
	require.NoError(t, err)
	assert.True(t, list1.IsEmpty())

	row2, err := assembler.Next()
	require.NoError(t, err)
	list2, err := row2.GetList("tags")
	require.NoError(t, err)
	assert.True(t, list2.IsEmpty())

	has, err := assembler.HasNext()
	require.NoError(t, err)
	assert.False(t, has)
}

// TestRowAssemblerMap reconstructs a MAP<STRING,INT32> column across two
// records: a 2-entry map (one value null) and an empty map.
func TestRowAssemblerMap(t *testing.T) {
	keyNode := leafNode("key", ByteArrayType, Required, 2, 1)
	valNode := leafNode("value", Int32Type, Optional, 3, 1)
	kv := &ColumnNode{Name: "key_value", ColumnIndex: -1, Repetition: Repeated, MaxDefinitionLevel: 2, MaxRepetitionLevel: 1, Children: []*ColumnNode{keyNode, valNode}}
	attrs := &ColumnNode{Name: "attrs", ColumnIndex: -1, Repetition: Optional, MaxDefinitionLevel: 1, MaxRepetitionLevel: 0, Children: []*ColumnNode{kv}}
	root := &ColumnNode{Name: "root", ColumnIndex: -1, Children: []*ColumnNode{attrs}}
	attrs.Parent = root
	kv.Parent = attrs
	keyNode.Parent, valNode.Parent = kv, kv
	assignLeafIndexes(root)
	schema := &FileSchema{Root: root}
	schema.leaves = root.Leaves()

	keyRep := encodeLevelStreamV1(1, []rleRun{{Value: 0, Count: 1}, {Value: 1, Count: 1}, {Value: 0, Count: 1}})
	keyDef := encodeLevelStreamV1(2, []rleRun{{Value: 2, Count: 2}, {Value: 1, Count: 1}})
	keyVals := encodePlainByteArray([]string{"a", "b"})
	keyBody := append(append(append([]byte{}, keyRep...), keyDef...), keyVals...)

	valRep := encodeLevelStreamV1(1, []rleRun{{Value: 0, Count: 1}, {Value: 1, Count: 1}, {Value: 0, Count: 1}})
	valDef := encodeLevelStreamV1(2, []rleRun{{Value: 3, Count: 1}, {Value: 2, Count: 1}, {Value: 1, Count: 1}})
	valVals := encodePlainInt32([]int32{1})
	valBody := append(append(append([]byte{}, valRep...), valDef...), valVals...)

	cursors := map[int]*ColumnChunkCursor{
		keyNode.ColumnIndex: buildLeafCursor(t, keyNode, keyBody, 3),
		valNode.ColumnIndex: buildLeafCursor(t, valNode, valBody, 3),
	}
	assembler := NewRowAssembler(schema, cursors)

	row0, err := assembler.Next()
	require.NoError(t, err)
	m0, err := row0.GetMap("attrs")
	require.NoError(t, err)
	require.Equal(t, 2, m0.Size())
	k0, _ := m0.KeyString(0)
	v0, _ := m0.ValueInt32(0)
	assert.Equal(t, "a", k0)
	assert.Equal(t, int32(1), v0)
	k1, _ := m0.KeyString(1)
	isNull1, _ := m0.IsValueNull(1)
	assert.Equal(t, "b", k1)
	assert.True(t, isNull1)

	row1, err := assembler.Next()
	require.NoError(t, err)
	m1, err := row1.GetMap("attrs")
	require.NoError(t, err)
	assert.True(t, m1.IsEmpty())

	has, err := assembler.HasNext()
	require.NoError(t, err)
	assert.False(t, has)
}
