package encoder

import "fmt"

// Expr is a symbolic address expression: an optional symbol reference plus a
// signed constant addend. An Expr with an empty symbol is a plain constant.
// Expressions are immutable; Add returns a fresh value.
type Expr struct {
	Sym    string
	Addend int64
}

// Symbol creates an expression referencing a symbol with no addend.
func Symbol(name string) *Expr {
	return &Expr{Sym: name}
}

// Constant creates a constant expression.
func Constant(v int64) *Expr {
	return &Expr{Addend: v}
}

// Add returns a copy of e with c added to the addend.
func (e *Expr) Add(c int64) *Expr {
	return &Expr{Sym: e.Sym, Addend: e.Addend + c}
}

func (e *Expr) String() string {
	if e.Sym == "" {
		return fmt.Sprintf("%d", e.Addend)
	}
	if e.Addend == 0 {
		return e.Sym
	}
	return fmt.Sprintf("%s%+d", e.Sym, e.Addend)
}
