package lpmodel

// Builder accumulates a Model during parsing. It is the single writer of
// the variable intern table: section processors call it serially, and no
// locking is required because no concurrent access exists (the core is
// single-threaded, one parser per byte source).
type Builder struct {
	model *Model
}

// NewBuilder returns a Builder over a fresh, empty Model.
func NewBuilder() *Builder {
	return &Builder{model: NewModel()}
}

// Model returns the model under construction. Callers should only treat
// it as finished once parsing has completed without error.
func (b *Builder) Model() *Model {
	return b.model
}

// SetSense records the objective's minimize/maximize direction.
func (b *Builder) SetSense(s ObjectiveSense) {
	b.model.Sense = s
}

// Intern returns the VarRef for name, creating a new Variable with
// default bounds [0, +Inf) and Continuous type if name has not been seen
// before. Every later reference to the same name resolves to the same
// VarRef.
func (b *Builder) Intern(name string) VarRef {
	if ref, ok := b.model.varIndex[name]; ok {
		return ref
	}
	lower, upper := defaultBounds()
	ref := VarRef(len(b.model.vars))
	b.model.vars = append(b.model.vars, Variable{
		Name:  name,
		Lower: lower,
		Upper: upper,
		Type:  Continuous,
	})
	b.model.varIndex[name] = ref
	return ref
}

// SetLower overwrites a variable's lower bound.
func (b *Builder) SetLower(ref VarRef, v float64) {
	b.model.vars[ref].Lower = v
}

// SetUpper overwrites a variable's upper bound.
func (b *Builder) SetUpper(ref VarRef, v float64) {
	b.model.vars[ref].Upper = v
}

// SetBounds overwrites both bounds at once.
func (b *Builder) SetBounds(ref VarRef, lower, upper float64) {
	b.model.vars[ref].Lower = lower
	b.model.vars[ref].Upper = upper
}

// SetType overwrites a variable's domain type.
func (b *Builder) SetType(ref VarRef, t VarType) {
	b.model.vars[ref].Type = t
}

// Type returns a variable's current domain type.
func (b *Builder) Type(ref VarRef) VarType {
	return b.model.vars[ref].Type
}

// MarkBinary sets a variable's type to Binary and clamps its bounds to
// [0, 1], matching spec invariant "binary variables have bounds [0, 1]".
func (b *Builder) MarkBinary(ref VarRef) {
	b.SetType(ref, Binary)
	b.SetBounds(ref, 0, 1)
}

// AddConstraint appends a finished constraint in source order.
func (b *Builder) AddConstraint(c Constraint) {
	b.model.Constraints = append(b.model.Constraints, c)
}

// SetObjective records the parsed objective expression.
func (b *Builder) SetObjective(e Expression) {
	b.model.Objective = e
}

// AddSOS appends a finished SOS group in source order.
func (b *Builder) AddSOS(g SOSGroup) {
	b.model.SOS = append(b.model.SOS, g)
}
