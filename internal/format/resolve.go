package format

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// lexerAliases maps common short forms and free-text language tags to a
// canonical lexer name. Lookups that chroma already resolves by name or
// alias never reach this table; it exists for the long tail of tags that
// models tend to emit.
var lexerAliases = map[string]string{
	"js":         "javascript",
	"node":       "javascript",
	"ts":         "typescript",
	"py":         "python",
	"rs":         "rust",
	"golang":     "go",
	"c++":        "cpp",
	"cxx":        "cpp",
	"kt":         "kotlin",
	"cs":         "csharp",
	"c#":         "csharp",
	"rb":         "ruby",
	"clj":        "clojure",
	"hs":         "haskell",
	"pl":         "perl",
	"m":          "matlab",
	"sh":         "bash",
	"shell":      "bash",
	"zsh":        "bash",
	"ps1":        "powershell",
	"bat":        "batchfile",
	"batch":      "batchfile",
	"htm":        "html",
	"scss":       "sass",
	"less":       "css",
	"yml":        "yaml",
	"cfg":        "ini",
	"conf":       "ini",
	"dockerfile": "docker",
	"md":         "markdown",
	"latex":      "tex",
	"vim":        "viml",
	"make":       "makefile",
	"gradle":     "groovy",
	"erl":        "erlang",
	"ex":         "elixir",
	"f#":         "fsharp",
	"fs":         "fsharp",
	"ml":         "ocaml",
	"cr":         "crystal",
	"vlang":      "v",
	"assembly":   "nasm",
	"asm":        "nasm",
	"patch":      "diff",
	"log":        "plaintext",
	"text":       "plaintext",
	"txt":        "plaintext",
}

// ResolveLexer maps a free-text language tag to a lexer: exact name or alias
// first, then file extension, then the alias table, then plain text. It never
// returns nil.
func ResolveLexer(tag string) chroma.Lexer {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag != "" {
		if lx := lexers.Get(tag); lx != nil {
			return chroma.Coalesce(lx)
		}
		if lx := lexers.Match("file." + tag); lx != nil {
			return chroma.Coalesce(lx)
		}
		if name, ok := lexerAliases[tag]; ok {
			if lx := lexers.Get(name); lx != nil {
				return chroma.Coalesce(lx)
			}
		}
	}
	// Unknown tags land on the same plaintext lexer the "text" and "txt"
	// aliases resolve to.
	if lx := lexers.Get("plaintext"); lx != nil {
		return chroma.Coalesce(lx)
	}
	return chroma.Coalesce(lexers.Fallback)
}
