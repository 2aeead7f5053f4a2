package domain

// Record is the minimal identified unit held by a construct.
//
// Implementations embed Block to get the id, module specifier and type tag.
// The empty string is the absent module specifier and absent type tag.
type Record interface {
	BlockID() any
	ModuleSpecifier() string
	SetModuleSpecifier(specifier string)
	TypeTag() string
}

// Block is an identified record. Its id never changes after construction.
type Block struct {
	id     any
	module string
	// Type routes the block through a sorter without a class scan.
	Type string
}

// NewBlock creates a block with the given id.
// When id is nil, generate is called to produce a fresh one.
func NewBlock(id any, generate func() any) *Block {
	if id == nil && generate != nil {
		id = generate()
	}
	return &Block{id: id}
}

// NewBlockModule creates a block that already knows which module it came from.
func NewBlockModule(id any, specifier string, generate func() any) *Block {
	b := NewBlock(id, generate)
	b.module = specifier
	return b
}

// BlockID returns the block's id.
func (b *Block) BlockID() any {
	return b.id
}

// ModuleSpecifier returns the specifier of the module the block was loaded from.
func (b *Block) ModuleSpecifier() string {
	return b.module
}

// SetModuleSpecifier records the module the block was loaded from.
// Specifiers are often unknown until a relative path is resolved, so this may
// be called after construction.
func (b *Block) SetModuleSpecifier(specifier string) {
	b.module = specifier
}

// TypeTag returns the block's sorter type tag.
func (b *Block) TypeTag() string {
	return b.Type
}

// Box is a block carrying an arbitrary payload.
type Box struct {
	*Block
	Value any
}

// NewBox creates a box holding value.
func NewBox(id, value any, generate func() any) *Box {
	return &Box{Block: NewBlock(id, generate), Value: value}
}

// NewBoxModule creates a box that already knows which module it came from.
func NewBoxModule(id any, specifier string, value any, generate func() any) *Box {
	return &Box{Block: NewBlockModule(id, specifier, generate), Value: value}
}
