package parquetcore

import (
	"strings"

	"github.com/rionmonster/parquetcore/internal/format"
)

// Repetition is a column schema node's repetition kind.
type Repetition int8

const (
	Required Repetition = iota
	Optional
	Repeated
)

func repetitionFromFormat(r format.FieldRepetitionType) Repetition {
	switch r {
	case format.Optional:
		return Optional
	case format.Repeated:
		return Repeated
	default:
		return Required
	}
}

// ColumnNode is one node of the schema tree: either a group (Children != nil)
// or a leaf carrying a PhysicalType. MaxDefinitionLevel/MaxRepetitionLevel
// are precomputed over the path from the root, per spec.md §3: every
// OPTIONAL ancestor raises the max def by one, every REPEATED ancestor
// raises both by one.
type ColumnNode struct {
	Name                string
	Repetition          Repetition
	Physical            PhysicalType
	HasPhysical         bool
	TypeLength          int32
	Logical             LogicalType
	Children            []*ColumnNode
	Parent              *ColumnNode
	MaxDefinitionLevel  uint8
	MaxRepetitionLevel  uint8
	// ColumnIndex is this leaf's position in the flattened, depth-first leaf
	// ordering of the schema, matching the parquet file's column order.
	// -1 for group nodes.
	ColumnIndex int
}

func (n *ColumnNode) IsLeaf() bool  { return len(n.Children) == 0 }
func (n *ColumnNode) IsGroup() bool { return len(n.Children) > 0 }

// IsList reports whether n is a LIST-annotated group: a 3-level
// group/repeated-group/element shape, or the 2-level repeated-element
// shape some writers emit.
func (n *ColumnNode) IsList() bool { return n.listElement() != nil }

// listElement returns the REPEATED child carrying list elements, or nil if
// n isn't shaped like a list.
func (n *ColumnNode) listElement() *ColumnNode {
	if n.IsGroup() && len(n.Children) == 1 && n.Children[0].Repetition == Repeated {
		child := n.Children[0]
		if child.IsGroup() && len(child.Children) == 1 {
			return child.Children[0]
		}
		return child
	}
	return nil
}

// IsMap reports whether n is a MAP-annotated group: a group containing one
// REPEATED key_value group with exactly two children (key, value).
func (n *ColumnNode) IsMap() bool {
	kv := n.mapKeyValue()
	return kv != nil
}

func (n *ColumnNode) mapKeyValue() *ColumnNode {
	if n.IsGroup() && len(n.Children) == 1 && n.Children[0].Repetition == Repeated {
		kv := n.Children[0]
		if kv.IsGroup() && len(kv.Children) == 2 {
			return kv
		}
	}
	return nil
}

// Leaves returns the schema's leaves in depth-first, file column order.
func (n *ColumnNode) Leaves() []*ColumnNode {
	var out []*ColumnNode
	var walk func(*ColumnNode)
	walk = func(node *ColumnNode) {
		if node.IsLeaf() {
			out = append(out, node)
			return
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// Path returns the dot-joined path from the schema root to n, excluding the
// synthetic root name.
func (n *ColumnNode) Path() string {
	var parts []string
	for p := n; p != nil && p.Parent != nil; p = p.Parent {
		parts = append([]string{p.Name}, parts...)
	}
	return strings.Join(parts, ".")
}

// FileSchema is the resolved schema tree of a parquet file, rooted at a
// synthetic group node whose children are the file's top-level fields.
type FileSchema struct {
	Root   *ColumnNode
	leaves []*ColumnNode
}

func (s *FileSchema) Leaves() []*ColumnNode { return s.leaves }

func (s *FileSchema) Leaf(i int) *ColumnNode { return s.leaves[i] }

// ResolveSchema builds a FileSchema from a FileMetaData's flattened,
// depth-first schema element list, the way parquet's own reference readers
// reconstruct the tree from SchemaElement.num_children (spec.md §6's
// "Schema resolver" collaborator).
func ResolveSchema(meta *format.FileMetaData) (*FileSchema, error) {
	if len(meta.Schema) == 0 {
		return nil, Error(MalformedFile, "empty schema", nil)
	}
	elems := meta.Schema
	root := &ColumnNode{Name: elems[0].Name, ColumnIndex: -1}
	pos := 1
	var build func(parent *ColumnNode, n int32) error
	build = func(parent *ColumnNode, n int32) error {
		for i := int32(0); i < n; i++ {
			if pos >= len(elems) {
				return Error(MalformedFile, "schema element list truncated", nil)
			}
			se := elems[pos]
			pos++
			node := &ColumnNode{
				Name:        se.Name,
				Repetition:  repetitionFromFormat(se.RepetitionType),
				Parent:      parent,
				ColumnIndex: -1,
			}
			if parent == root && !se.HasRepetition {
				node.Repetition = Required
			}
			node.MaxDefinitionLevel = parent.MaxDefinitionLevel
			node.MaxRepetitionLevel = parent.MaxRepetitionLevel
			switch node.Repetition {
			case Optional:
				node.MaxDefinitionLevel++
			case Repeated:
				node.MaxDefinitionLevel++
				node.MaxRepetitionLevel++
			}
			if se.HasNumChildren && se.NumChildren > 0 {
				if err := build(node, se.NumChildren); err != nil {
					return err
				}
			} else {
				node.HasPhysical = true
				node.Physical = physicalTypeFromFormat(se.Type)
				node.TypeLength = se.TypeLength
				node.Logical = logicalTypeFromFormat(&se)
			}
			parent.Children = append(parent.Children, node)
		}
		return nil
	}
	numChildren := elems[0].NumChildren
	if !elems[0].HasNumChildren {
		numChildren = int32(len(elems) - 1)
	}
	if err := build(root, numChildren); err != nil {
		return nil, err
	}
	schema := &FileSchema{Root: root}
	schema.leaves = root.Leaves()
	for i, leaf := range schema.leaves {
		leaf.ColumnIndex = i
	}
	return schema, nil
}
