// Package ujs parses, checks and prints ECMAScript 2017 programs.
//
// ujs is a toolchain for JavaScript source written in Go, featuring:
//   - A tokenizer and recursive descent parser for the Script and
//     Module goals
//   - An early-error checker that reports every violation in one pass
//   - A code generator whose output always parses back to the same tree
//   - A JSON interchange form of the syntax tree
//
// # Quick Start
//
// Parse a script and print it back compactly:
//
//	prog, err := ujs.ParseScript("var a = (1 + 2) * 3;")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ujs.CodeGen(prog)) // var a=(1+2)*3
//
// With configuration:
//
//	prog, err := ujs.Parse(src, &ujs.Config{
//	    Goal:      ujs.Module,
//	    Locations: true,
//	})
//
// # Validation
//
// The parse functions run the early-error checker and fail if it finds
// anything. [Validate] runs the complete checker on any [Program],
// including one built by hand with [NewProgram] or read with
// [DecodeJSON].
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [JsError]: lexical and syntax errors, which stop the parse
//   - [EarlyErrors]: every early error of a program that parsed
//   - [ValidationError]: one early error
//
// # Thread Safety
//
// A [Program] is never modified after parsing and is safe for concurrent
// use. Independent sources can be parsed concurrently.
package ujs
