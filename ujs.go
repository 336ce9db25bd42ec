package ujs

import (
	"github.com/kolkov/ujs/internal/astjson"
	"github.com/kolkov/ujs/internal/codegen"
	"github.com/kolkov/ujs/internal/parser"
	"github.com/kolkov/ujs/internal/semantic"
)

// Version is the ujs version string.
const Version = "0.1.0"

// Parse parses and checks src. It returns a *JsError for a lexical or
// syntax error, and EarlyErrors if the source parses but has early
// errors. If config is nil, the defaults are used: Script goal, no
// locations.
//
// Example:
//
//	prog, err := ujs.Parse(src, &ujs.Config{Goal: ujs.Module})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ujs.CodeGen(prog))
func Parse(src string, config *Config) (*Program, error) {
	if config == nil {
		config = &defaultConfig
	}
	// Early errors are positioned through the location table, so it is
	// always built.
	mode := parser.Locations
	if config.Goal == Module {
		mode |= parser.ModuleGoal
	}
	res, err := parser.Parse(src, mode)
	if err != nil {
		return nil, syntaxError(err)
	}
	checked := semantic.CheckParsed(res.Program, res.Locations)
	if len(res.EarlyErrors) > 0 || len(checked) > 0 {
		return nil, earlyErrors(res.EarlyErrors, checked)
	}

	prog := &Program{
		tree:     res.Program,
		goal:     config.Goal,
		comments: res.Comments,
		source:   src,
	}
	if config.Locations {
		prog.locs = res.Locations
	}
	return prog, nil
}

// ParseScript parses src with the Script goal.
func ParseScript(src string) (*Program, error) {
	return Parse(src, &Config{Goal: Script})
}

// ParseModule parses src with the Module goal.
func ParseModule(src string) (*Program, error) {
	return Parse(src, &Config{Goal: Module})
}

// ParseScriptWithLocation is like ParseScript but records node locations.
func ParseScriptWithLocation(src string) (*Program, error) {
	return Parse(src, &Config{Goal: Script, Locations: true})
}

// ParseModuleWithLocation is like ParseModule but records node locations.
func ParseModuleWithLocation(src string) (*Program, error) {
	return Parse(src, &Config{Goal: Module, Locations: true})
}

// MustParseScript is like ParseScript but panics on error. It simplifies
// initialization of global program variables.
func MustParseScript(src string) *Program {
	prog, err := ParseScript(src)
	if err != nil {
		panic(err)
	}
	return prog
}

// CodeGen prints prog in its most compact form. The output parses back
// to a tree equal to prog's.
//
// Example:
//
//	ujs.CodeGen(ujs.MustParseScript("(1 + 2) * 3")) // "(1+2)*3"
func CodeGen(prog *Program) string {
	return codegen.Generate(prog.tree, false)
}

// PrettyCodeGen prints prog with one statement per line and two-space
// indentation.
func PrettyCodeGen(prog *Program) string {
	return codegen.Generate(prog.tree, true)
}

// Generate prints prog as config selects. A nil config prints compactly.
func Generate(prog *Program, config *Config) string {
	if config == nil {
		config = &defaultConfig
	}
	return prog.Generate(config.Pretty)
}

// FormatNumber returns the shortest source text for the number v.
func FormatNumber(v float64) string {
	return codegen.FormatNumber(v)
}

// Validate returns every early error in prog. Unlike the parse functions
// it checks every rule, including those only the parser enforces, so it
// suits trees built by hand. A valid program yields nil.
func Validate(prog *Program) []*ValidationError {
	errs := semantic.Check(prog.tree, prog.locs)
	if len(errs) == 0 {
		return nil
	}
	return validationErrors(errs)
}

// DecodeJSON reads a program from its JSON interchange form. The result
// has no locations and has not been validated.
func DecodeJSON(data []byte) (*Program, error) {
	tree, err := astjson.DecodeProgram(data)
	if err != nil {
		return nil, err
	}
	return NewProgram(tree), nil
}
