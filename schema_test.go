package parquetcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rionmonster/parquetcore/internal/format"
)

func TestResolveSchemaFlat(t *testing.T) {
	meta := &format.FileMetaData{
		Schema: []format.SchemaElement{
			{Name: "root", HasNumChildren: true, NumChildren: 2},
			{Name: "id", HasType: true, Type: format.Int32, RepetitionType: format.Required, HasRepetition: true},
			{Name: "name", HasType: true, Type: format.ByteArray, RepetitionType: format.Optional, HasRepetition: true,
				HasConverted: true, ConvertedType: format.UTF8},
		},
	}

	schema, err := ResolveSchema(meta)
	require.NoError(t, err)
	require.Len(t, schema.Leaves(), 2)

	id := schema.Leaf(0)
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, Int32Type, id.Physical)
	assert.Equal(t, uint8(0), id.MaxDefinitionLevel)
	assert.Equal(t, uint8(0), id.MaxRepetitionLevel)

	name := schema.Leaf(1)
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, ByteArrayType, name.Physical)
	assert.Equal(t, uint8(1), name.MaxDefinitionLevel)
	assert.Equal(t, StringLogicalType, name.Logical.Kind)
}

// TestResolveSchemaNestedList builds the canonical 3-level LIST encoding
// (group / repeated group "list" / element) and checks max def/rep levels
// accumulate per spec.md §3: each OPTIONAL ancestor raises max def by one,
// each REPEATED ancestor raises both by one.
func TestResolveSchemaNestedList(t *testing.T) {
	meta := &format.FileMetaData{
		Schema: []format.SchemaElement{
			{Name: "root", HasNumChildren: true, NumChildren: 1},
			{Name: "tags", HasNumChildren: true, NumChildren: 1, RepetitionType: format.Optional, HasRepetition: true},
			{Name: "list", HasNumChildren: true, NumChildren: 1, RepetitionType: format.Repeated, HasRepetition: true},
			{Name: "element", HasType: true, Type: format.ByteArray, RepetitionType: format.Required, HasRepetition: true},
		},
	}

	schema, err := ResolveSchema(meta)
	require.NoError(t, err)
	require.Len(t, schema.Leaves(), 1)

	element := schema.Leaf(0)
	assert.Equal(t, "element", element.Name)
	assert.Equal(t, uint8(2), element.MaxDefinitionLevel)
	assert.Equal(t, uint8(1), element.MaxRepetitionLevel)
	assert.Equal(t, "tags.list.element", element.Path())

	tags := schema.Root.Children[0]
	assert.True(t, tags.IsList())
	assert.Same(t, element, tags.listElement())
}

func TestColumnNodeIsMap(t *testing.T) {
	meta := &format.FileMetaData{
		Schema: []format.SchemaElement{
			{Name: "root", HasNumChildren: true, NumChildren: 1},
			{Name: "attrs", HasNumChildren: true, NumChildren: 1, RepetitionType: format.Optional, HasRepetition: true},
			{Name: "key_value", HasNumChildren: true, NumChildren: 2, RepetitionType: format.Repeated, HasRepetition: true},
			{Name: "key", HasType: true, Type: format.ByteArray, RepetitionType: format.Required, HasRepetition: true},
			{Name: "value", HasType: true, Type: format.Int32, RepetitionType: format.Optional, HasRepetition: true},
		},
	}

	schema, err := ResolveSchema(meta)
	require.NoError(t, err)
	attrs := schema.Root.Children[0]
	assert.True(t, attrs.IsMap())
	kv := attrs.Children[0]
	assert.Equal(t, "key", kv.Children[0].Name)
	assert.Equal(t, "value", kv.Children[1].Name)
}

func TestResolveSchemaTruncatedFails(t *testing.T) {
	meta := &format.FileMetaData{
		Schema: []format.SchemaElement{
			{Name: "root", HasNumChildren: true, NumChildren: 2},
			{Name: "id", HasType: true, Type: format.Int32},
		},
	}
	_, err := ResolveSchema(meta)
	require.Error(t, err)
	assert.True(t, Is(err, MalformedFile))
}
