package parquetcore

// leafStream is one projected leaf column's decoded-value stream: it pulls
// DecodedPages from a ColumnChunkCursor on demand and exposes a one-triple
// lookahead of (definition level, repetition level, value) so the assembler
// can decide record/list boundaries before committing to consume (spec.md
// §4.8's "aligned parallel arrays" fused lazily into a cursor-style API).
type leafStream struct {
	node   *ColumnNode
	cursor *ColumnChunkCursor

	page   *DecodedPage
	pos    int
	valIdx int

	peeked bool
	pDef   uint8
	pRep   uint8
	pVal   Value
	pOk    bool
}

func newLeafStream(node *ColumnNode, cursor *ColumnChunkCursor) *leafStream {
	return &leafStream{node: node, cursor: cursor}
}

// fill advances the cursor across exhausted pages until it has a peeked
// triple ready, or the column has no more pages.
func (s *leafStream) fill() error {
	if s.peeked {
		return nil
	}
	for s.page == nil || s.pos >= s.page.ValueCount {
		if !s.cursor.HasNext() {
			s.pOk = false
			s.peeked = true
			return nil
		}
		page, err := s.cursor.NextPage()
		if err != nil {
			return err
		}
		s.page = page
		s.pos = 0
		s.valIdx = 0
	}

	def := s.node.MaxDefinitionLevel
	if s.page.DefinitionLevels != nil {
		def = s.page.DefinitionLevels[s.pos]
	}
	var rep uint8
	if s.page.RepetitionLevels != nil {
		rep = s.page.RepetitionLevels[s.pos]
	}
	var val Value
	if def == s.node.MaxDefinitionLevel {
		val = s.page.Values[s.valIdx]
		s.valIdx++
	}
	s.pDef, s.pRep, s.pVal, s.pOk = def, rep, val, true
	s.peeked = true
	s.pos++
	return nil
}

// peek returns the next triple without consuming it.
func (s *leafStream) peek() (def, rep uint8, val Value, ok bool, err error) {
	if err := s.fill(); err != nil {
		return 0, 0, Value{}, false, err
	}
	return s.pDef, s.pRep, s.pVal, s.pOk, nil
}

// advance consumes the peeked triple.
func (s *leafStream) advance() { s.peeked = false }

// RowAssembler joins per-column decoded value streams into logical rows
// shaped by the schema tree, honoring Dremel-style repetition/definition
// level semantics (spec.md §4.8).
type RowAssembler struct {
	schema *FileSchema
	leaves map[int]*leafStream
}

// NewRowAssembler builds an assembler over one ColumnChunkCursor per
// projected leaf column, keyed by the leaf's ColumnIndex.
func NewRowAssembler(schema *FileSchema, cursors map[int]*ColumnChunkCursor) *RowAssembler {
	leaves := make(map[int]*leafStream, len(cursors))
	for idx, cur := range cursors {
		leaves[idx] = newLeafStream(schema.Leaf(idx), cur)
	}
	return &RowAssembler{schema: schema, leaves: leaves}
}

// representative returns the lowest-indexed projected leaf's stream, used to
// detect record boundaries: every projected column advances by exactly one
// record per Next() call, so any one of them reveals whether more rows
// remain (spec.md §4.8's lockstep requirement).
func (a *RowAssembler) representative() *leafStream {
	var best *leafStream
	bestIdx := -1
	for idx, s := range a.leaves {
		if bestIdx == -1 || idx < bestIdx {
			bestIdx, best = idx, s
		}
	}
	return best
}

// HasNext reports whether another row is available.
func (a *RowAssembler) HasNext() (bool, error) {
	rep := a.representative()
	if rep == nil {
		return false, nil
	}
	_, _, _, ok, err := rep.peek()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Next assembles and returns the next row.
func (a *RowAssembler) Next() (*Row, error) {
	has, err := a.HasNext()
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, Error(IndexOutOfRange, "no more rows", nil)
	}
	fields := make([]RowValue, len(a.schema.Root.Children))
	for i, child := range a.schema.Root.Children {
		v, err := a.assembleNode(child)
		if err != nil {
			return nil, err
		}
		fields[i] = v
	}
	return newRowView(a.schema.Root.Children, fields), nil
}

// firstProjectedLeaf returns the first leaf under node (depth-first) that
// has a live stream, used to decide when a repeated group's run of elements
// ends. A list or map column is only assemblable if at least one of its
// descendant leaves is projected.
func (a *RowAssembler) firstProjectedLeaf(node *ColumnNode) *leafStream {
	for _, leaf := range node.Leaves() {
		if s, ok := a.leaves[leaf.ColumnIndex]; ok {
			return s
		}
	}
	return nil
}

func (a *RowAssembler) assembleNode(node *ColumnNode) (RowValue, error) {
	switch {
	case node.IsMap():
		return a.assembleMap(node)
	case node.IsList():
		return a.assembleList(node)
	case node.IsGroup():
		return a.assembleGroupFields(node)
	case node.Repetition == Repeated:
		return a.assembleRepeatedLeaf(node)
	default:
		return a.assembleLeaf(node)
	}
}

func (a *RowAssembler) assembleGroupFields(node *ColumnNode) (RowValue, error) {
	fields := make([]RowValue, len(node.Children))
	for i, c := range node.Children {
		v, err := a.assembleNode(c)
		if err != nil {
			return RowValue{}, err
		}
		fields[i] = v
	}
	return structRowValue(node, fields), nil
}

func (a *RowAssembler) assembleLeaf(node *ColumnNode) (RowValue, error) {
	stream, ok := a.leaves[node.ColumnIndex]
	if !ok {
		return nullRowValue(node), nil
	}
	def, _, val, ok, err := stream.peek()
	if err != nil {
		return RowValue{}, err
	}
	if !ok {
		return RowValue{}, Error(CorruptPage, "column stream exhausted before record boundary", nil)
	}
	stream.advance()
	if def < node.MaxDefinitionLevel {
		return nullRowValue(node), nil
	}
	return scalarRowValue(node, val), nil
}

// assembleRepeatedLeaf handles a REPEATED leaf that sits directly under a
// non-repeated parent, without an intervening LIST-shaped group (spec.md
// §4.1's "2-level repeated-element shape some writers emit").
func (a *RowAssembler) assembleRepeatedLeaf(node *ColumnNode) (RowValue, error) {
	stream, ok := a.leaves[node.ColumnIndex]
	if !ok {
		return listRowValue(node, nil), nil
	}
	maxRep := node.MaxRepetitionLevel
	var items []RowValue
	first := true
	for {
		def, rep, val, ok, err := stream.peek()
		if err != nil {
			return RowValue{}, err
		}
		if !ok {
			break
		}
		if !first && rep < maxRep {
			break
		}
		first = false
		stream.advance()
		if def >= node.MaxDefinitionLevel {
			items = append(items, scalarRowValue(node, val))
		}
	}
	return listRowValue(node, items), nil
}

// assembleList reconstructs one LIST column's elements for the current
// record (spec.md §4.8: a value at the list's max rep level continues the
// innermost open list; a lower rep level closes it).
func (a *RowAssembler) assembleList(node *ColumnNode) (RowValue, error) {
	repeatedNode := node.Children[0]
	elem := node.listElement()

	stream := a.firstProjectedLeaf(elem)
	if stream == nil {
		return listRowValue(node, nil), nil
	}
	if elem == repeatedNode {
		// 2-level shape: the repeated leaf itself holds the elements.
		v, err := a.assembleRepeatedLeaf(elem)
		if err != nil {
			return RowValue{}, err
		}
		return listRowValue(node, v.items), nil
	}

	maxRep := repeatedNode.MaxRepetitionLevel
	var items []RowValue
	first := true
	for {
		def, rep, _, ok, err := stream.peek()
		if err != nil {
			return RowValue{}, err
		}
		if !ok {
			break
		}
		if !first && rep < maxRep {
			break
		}
		first = false
		isElement := def >= repeatedNode.MaxDefinitionLevel
		val, err := a.assembleNode(elem)
		if err != nil {
			return RowValue{}, err
		}
		if isElement {
			items = append(items, val)
		}
	}
	return listRowValue(node, items), nil
}

// assembleMap reconstructs one MAP column's entries for the current record.
// MAP is a REPEATED group of key/value pairs with the key REQUIRED (spec.md
// §4.8).
func (a *RowAssembler) assembleMap(node *ColumnNode) (RowValue, error) {
	kv := node.Children[0]
	keyNode, valNode := kv.Children[0], kv.Children[1]

	stream := a.firstProjectedLeaf(keyNode)
	if stream == nil {
		return mapRowValue(node, nil), nil
	}

	maxRep := kv.MaxRepetitionLevel
	var entries []MapEntry
	first := true
	for {
		def, rep, _, ok, err := stream.peek()
		if err != nil {
			return RowValue{}, err
		}
		if !ok {
			break
		}
		if !first && rep < maxRep {
			break
		}
		first = false
		isEntry := def >= kv.MaxDefinitionLevel
		keyVal, err := a.assembleNode(keyNode)
		if err != nil {
			return RowValue{}, err
		}
		valVal, err := a.assembleNode(valNode)
		if err != nil {
			return RowValue{}, err
		}
		if isEntry {
			entries = append(entries, MapEntry{Key: keyVal, Value: valVal})
		}
	}
	return mapRowValue(node, entries), nil
}
