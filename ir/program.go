package ir

import "fmt"

// Inst is a single instruction: an opcode, its ordered operands, and the
// modifier flags attached by the frontend.
type Inst struct {
	Op   Opcode
	Args []Value
	Info TextureInstInfo
}

// Program is an append-only instruction arena. Instructions are addressed
// by stable InstID indices and are immutable once appended. The sparse
// side table associates a texture instruction with its residency pseudo-op
// and records the backend's one-shot claim of it.
type Program struct {
	insts   []Inst
	sparse  map[InstID]InstID
	claimed map[InstID]struct{}
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{
		sparse:  make(map[InstID]InstID),
		claimed: make(map[InstID]struct{}),
	}
}

// Append adds an instruction and returns its stable index.
func (p *Program) Append(op Opcode, info TextureInstInfo, args ...Value) InstID {
	id := InstID(len(p.insts))
	p.insts = append(p.insts, Inst{Op: op, Args: args, Info: info})
	return id
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.insts)
}

// Inst returns the instruction at id. It panics on an out-of-range index;
// a dangling InstID is a defect in the arena's user.
func (p *Program) Inst(id InstID) *Inst {
	if int(id) >= len(p.insts) {
		panic(fmt.Sprintf("ir: instruction index %d out of range (%d instructions)", id, len(p.insts)))
	}
	return &p.insts[id]
}

// AllArgsImmediate reports whether every operand of the instruction at id
// is an immediate scalar.
func (p *Program) AllArgsImmediate(id InstID) bool {
	for _, arg := range p.Inst(id).Args {
		if !arg.IsImmediate() {
			return false
		}
	}
	return true
}

// AddSparsePseudo appends a sparse-residency pseudo-instruction referencing
// op and associates the two. It panics if op already has a pseudo-op; the
// frontend attaches at most one.
func (p *Program) AddSparsePseudo(op InstID) InstID {
	if _, ok := p.sparse[op]; ok {
		panic(fmt.Sprintf("ir: instruction %d already has a sparse pseudo-op", op))
	}
	pseudo := p.Append(OpGetSparseFromOp, TextureInstInfo{}, Ref(op))
	p.sparse[op] = pseudo
	return pseudo
}

// SparsePseudo returns the residency pseudo-op associated with op, without
// claiming it.
func (p *Program) SparsePseudo(op InstID) (InstID, bool) {
	pseudo, ok := p.sparse[op]
	return pseudo, ok
}

// ClaimSparse claims the residency pseudo-op associated with op, marking it
// consumed so it is never lowered independently. The second claim of the
// same pseudo-op panics: each instruction is lowered exactly once, so a
// double claim means the backend's dispatch is broken.
func (p *Program) ClaimSparse(op InstID) (InstID, bool) {
	pseudo, ok := p.sparse[op]
	if !ok {
		return 0, false
	}
	if _, done := p.claimed[pseudo]; done {
		panic(fmt.Sprintf("ir: sparse pseudo-op %d claimed twice", pseudo))
	}
	p.claimed[pseudo] = struct{}{}
	return pseudo, true
}

// SparseClaimed reports whether the pseudo-op at id has been consumed.
func (p *Program) SparseClaimed(id InstID) bool {
	_, done := p.claimed[id]
	return done
}
