package tsqwatch

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/dshills/warden/internal/wverrors"
)

// extByLanguage maps the design-level extension surface (spec §4.3.4)
// to a grammar loader. json has no sitter grammar in this stack; it is
// listed in the supported surface but there is nowhere dedicated for
// it to live, so it resolves to nothing and fails as unsupported.
var extByLanguage = map[string]func() *sitter.Language{
	".js":   javascript.GetLanguage,
	".jsx":  javascript.GetLanguage,
	".mjs":  javascript.GetLanguage,
	".ts":   typescript.GetLanguage,
	".tsx":  tsx.GetLanguage,
	".py":   python.GetLanguage,
	".go":   golang.GetLanguage,
	".java": java.GetLanguage,
	".rs":   rust.GetLanguage,
	".c":    c.GetLanguage,
	".h":    c.GetLanguage,
	".cpp":  cpp.GetLanguage,
	".cxx":  cpp.GetLanguage,
	".hpp":  cpp.GetLanguage,
}

var grammarCache sync.Map // extension -> *sitter.Language

// resolveLanguage implements the extension-resolution order from
// §4.3.4: explicit language override, else the file path's extension,
// else a hard failure.
func resolveLanguage(explicit, path string) (ext string, lang *sitter.Language, err error) {
	ext = explicit
	if ext == "" {
		ext = filepath.Ext(path)
	}
	if ext == "" {
		return "", nil, &wverrors.ConfigError{Detail: "tsq watch requires a file extension"}
	}
	ext = strings.ToLower(ext)

	if cached, ok := grammarCache.Load(ext); ok {
		return ext, cached.(*sitter.Language), nil
	}

	loader, ok := extByLanguage[ext]
	if !ok {
		return "", nil, &wverrors.UnsupportedLanguageError{Extension: ext}
	}
	lang = loader()
	grammarCache.Store(ext, lang)
	return ext, lang, nil
}
