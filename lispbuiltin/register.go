package lispbuiltin

import (
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
)

// all lists every builtin exposed to the language, keyed by the name it is
// bound under.
var all = map[string]*lispeval.Builtin{
	"list": List,
	"head": Head,
	"tail": Tail,
	"join": Join,
	"eval": Eval,

	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,

	">":  Gt,
	"<":  Lt,
	">=": Ge,
	"<=": Le,

	"==": Eq,
	"!=": Ne,

	"if": If,

	"def": Def,
	"=":   Put,

	"\\": Lambda,

	"print": Print,
	"error": Error,
	"load":  Load,
}

// Register binds every builtin into env, typically the root environment
// created once at process startup.
func Register(env *lispenv.Env) {
	for name, b := range all {
		env.AddBuiltin(name, b)
	}
}
