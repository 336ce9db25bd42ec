package semantic

// DeclKind defines how a name was declared.
type DeclKind int

const (
	DeclVar      DeclKind = iota // var, or a function at function or script top level
	DeclLet                      // let
	DeclConst                    // const
	DeclClass                    // class declaration
	DeclFunction                 // function declaration in a block or at module top level
	DeclImport                   // import binding
	DeclParam                    // formal parameter
	DeclCatch                    // catch clause parameter
)

// String returns a human-readable name for the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclVar:
		return "var"
	case DeclLet:
		return "let"
	case DeclConst:
		return "const"
	case DeclClass:
		return "class"
	case DeclFunction:
		return "function"
	case DeclImport:
		return "import"
	case DeclParam:
		return "parameter"
	case DeclCatch:
		return "catch parameter"
	default:
		return "unknown"
	}
}

// ScopeKind distinguishes the scopes that var declarations hoist to from
// the block scopes they pass through.
type ScopeKind int

const (
	ScopeProgram  ScopeKind = iota // Script or Module top level
	ScopeFunction                  // function body, including its parameters
	ScopeBlock                     // block, switch body, for head or catch clause
)

// Scope holds the names declared directly in one scope.
//
// Lexical names (let, const, class, block functions, imports) may be
// declared once per scope and may not share a name with a var that is
// declared in or hoisted through the scope. Parameters and catch
// parameters are kept apart because their conflict rules differ.
type Scope struct {
	Kind   ScopeKind
	Parent *Scope

	lexical map[string]DeclKind
	vars    map[string]bool
	params  map[string]bool
	catch   map[string]bool

	// catchPattern is set when the catch parameter is a destructuring
	// pattern; a var may then not redeclare one of its names.
	catchPattern bool
}

// NewScope creates a scope nested in parent, which may be nil.
func NewScope(parent *Scope, kind ScopeKind) *Scope {
	return &Scope{
		Kind:    kind,
		Parent:  parent,
		lexical: make(map[string]DeclKind),
		vars:    make(map[string]bool),
	}
}

// DeclareParams records the parameter names of a function scope.
func (s *Scope) DeclareParams(names []string) {
	s.params = make(map[string]bool, len(names))
	for _, name := range names {
		s.params[name] = true
	}
}

// DeclareCatch records the names bound by a catch parameter.
func (s *Scope) DeclareCatch(names []string, pattern bool) {
	s.catch = make(map[string]bool, len(names))
	for _, name := range names {
		s.catch[name] = true
	}
	s.catchPattern = pattern
}

// DeclareLexical declares a lexically scoped name. It returns an error
// message format, with a %q verb for the name, or "" if the declaration
// is allowed. In sloppy mode a block may declare the same function twice.
func (s *Scope) DeclareLexical(name string, kind DeclKind, strict bool) string {
	if prev, ok := s.lexical[name]; ok {
		if prev == DeclFunction && kind == DeclFunction && !strict && s.Kind == ScopeBlock {
			return ""
		}
		return errDuplicateLexical
	}
	if s.vars[name] || s.params[name] || s.catch[name] {
		return errVarConflict
	}
	s.lexical[name] = kind
	return ""
}

// DeclareVar declares a var-scoped name. The name is recorded in every
// scope up to the nearest function or program scope so that a later
// lexical declaration in any of them can detect the conflict.
func (s *Scope) DeclareVar(name string) string {
	for sc := s; sc != nil; sc = sc.Parent {
		if _, ok := sc.lexical[name]; ok {
			return errVarConflict
		}
		if sc.catchPattern && sc.catch[name] {
			return errVarConflict
		}
		sc.vars[name] = true
		if sc.Kind != ScopeBlock {
			break
		}
	}
	return ""
}

// DeclareFunction declares a function at the top level of a function or
// a script, where functions behave like vars.
func (s *Scope) DeclareFunction(name string) string {
	if _, ok := s.lexical[name]; ok {
		return errVarConflict
	}
	s.vars[name] = true
	return ""
}

// Lookup reports whether name is declared in s itself.
func (s *Scope) Lookup(name string) (DeclKind, bool) {
	if kind, ok := s.lexical[name]; ok {
		return kind, true
	}
	if s.vars[name] {
		return DeclVar, true
	}
	if s.params[name] {
		return DeclParam, true
	}
	if s.catch[name] {
		return DeclCatch, true
	}
	return 0, false
}
