// Package plugins implements the startup-time registration extension
// point named in spec §6 ("new decoders are added to the registry at
// compile time or through a startup-time registration call"): a
// directory of Go source files, each defining one decoder, interpreted
// with yaegi instead of compiled, and adapted into a types.Decoder the
// registry can hold.
//
// The shape is lifted directly from the teacher's
// internal/autopoiesis/yaegi_executor.go: a whitelist of safe stdlib
// imports, interp.New + stdlib.Symbols, then a typed function lookup —
// generalized here from "RunTool(string) (string, error)" to the
// decoder contract's "Decode(string) (string, bool)".
package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/RenTrieu/Ares/internal/logging"
	"github.com/RenTrieu/Ares/internal/types"
)

// allowedImports mirrors the teacher's sandboxing: plugin decoders may
// only import packages that cannot reach the filesystem, network, or
// process (§4.1 "Attempt is pure and side-effect-free").
var allowedImports = map[string]bool{
	"strings":         true,
	"strconv":         true,
	"fmt":             true,
	"math":            true,
	"regexp":          true,
	"encoding/json":   true,
	"encoding/base64": true,
	"encoding/hex":    true,
	"unicode":         true,
	"unicode/utf8":    true,
	"sort":            true,
	"bytes":           true,
}

// Loader interprets plugin decoder source files with yaegi and exposes
// them as types.Decoder values ready for Registry.Register.
type Loader struct{}

// NewLoader returns a ready Loader.
func NewLoader() *Loader { return &Loader{} }

// LoadDir interprets every *.go file in dir, skipping (and logging) any
// file that fails validation or evaluation rather than aborting the
// whole load — one bad plugin must not prevent the rest from loading.
func (l *Loader) LoadDir(dir string) ([]types.Decoder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("plugins: read dir: %w", err)
	}

	var out []types.Decoder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		code, err := os.ReadFile(path)
		if err != nil {
			logging.Get(logging.CategoryPlugins).Warnw("failed to read plugin", "path", path, "err", err)
			continue
		}
		dec, err := l.load(e.Name(), string(code))
		if err != nil {
			logging.Get(logging.CategoryPlugins).Warnw("failed to load plugin", "path", path, "err", err)
			continue
		}
		out = append(out, dec)
	}
	return out, nil
}

func (l *Loader) load(fileName, code string) (types.Decoder, error) {
	if err := validateImports(code); err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("plugins: load stdlib: %w", err)
	}
	if _, err := i.Eval(code); err != nil {
		return nil, fmt.Errorf("plugins: eval: %w", err)
	}

	decodeVal, err := i.Eval("main.Decode")
	if err != nil {
		return nil, fmt.Errorf("plugins: Decode function not found: %w", err)
	}
	decodeFn, ok := decodeVal.Interface().(func(string) (string, bool))
	if !ok {
		return nil, fmt.Errorf("plugins: Decode has wrong signature, want func(string) (string, bool)")
	}

	nameVal, err := i.Eval("main.Name")
	name := strings.TrimSuffix(fileName, ".go")
	if err == nil {
		if s, ok := nameVal.Interface().(string); ok && s != "" {
			name = s
		}
	}

	return &interpretedDecoder{
		descriptor: types.Descriptor{
			Name:        name,
			Description: "user plugin decoder loaded from " + fileName,
			Link:        fileName,
			Tags:        []string{"plugin"},
			Popularity:  0.05,
		},
		decode: decodeFn,
	}, nil
}

// interpretedDecoder adapts a yaegi-interpreted Decode function to the
// types.Decoder contract.
type interpretedDecoder struct {
	descriptor types.Descriptor
	decode     func(string) (string, bool)
}

func (d *interpretedDecoder) Identify() types.Descriptor { return d.descriptor }

func (d *interpretedDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	cr := types.FromDescriptor(d.descriptor, text)
	out, ok := d.decode(string(text))
	if !ok || out == "" || types.Text(out) == text {
		return cr
	}
	candidate := types.Text(out)
	if !candidate.Valid() {
		return cr
	}
	cr.UnencryptedText = []types.Text{candidate}
	if checker != nil {
		result := checker.Classify(candidate)
		if result.IsIdentified {
			cr.Success = true
			cr.CheckerName = result.CheckerName
			cr.CheckerDesc = result.CheckerDesc
		}
	}
	return cr
}

func validateImports(code string) error {
	lines := strings.Split(code, "\n")
	inBlock := false
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "import (") {
			inBlock = true
			continue
		}
		if inBlock && strings.HasPrefix(t, ")") {
			inBlock = false
			continue
		}
		var imp string
		switch {
		case inBlock && t != "":
			imp = strings.Trim(t, `"`)
		case strings.HasPrefix(t, `import "`):
			imp = strings.TrimPrefix(strings.TrimSuffix(t, `"`), `import "`)
		default:
			continue
		}
		if imp == "" {
			continue
		}
		if !allowedImports[imp] {
			return fmt.Errorf("plugins: import %q is not in the allowed stdlib set", imp)
		}
	}
	return nil
}
