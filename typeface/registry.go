package typeface

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FallbackFamily is the family ForFont uses when nothing else matches.
const FallbackFamily = "Go"

// registry holds typefaces added with Register.
var registry = struct {
	mu    sync.RWMutex
	faces map[faceKey]Typeface
}{faces: make(map[faceKey]Typeface)}

// builtinFont is one of the Go fonts, parsed on first use.
type builtinFont struct {
	family string
	style  string
	load   func() (*SFNT, error)
}

func newBuiltin(family, style string, data []byte) builtinFont {
	return builtinFont{
		family: family,
		style:  style,
		load: sync.OnceValues(func() (*SFNT, error) {
			return Parse(data, WithName(family), WithStyle(style))
		}),
	}
}

// builtins lists the fonts that are always available. The first entry is
// the fallback.
var builtins = []builtinFont{
	newBuiltin(FallbackFamily, "Regular", goregular.TTF),
	newBuiltin(FallbackFamily, "Bold", gobold.TTF),
	newBuiltin(FallbackFamily, "Italic", goitalic.TTF),
	newBuiltin(FallbackFamily, "Bold Italic", gobolditalic.TTF),
	newBuiltin("Go Mono", "Regular", gomono.TTF),
	newBuiltin("Go Mono", "Bold", gomonobold.TTF),
}

// Register parses font data and makes it available to ForFont under its
// family and style. A later registration with the same family and style
// replaces the earlier one.
func Register(data []byte, opts ...Option) (Typeface, error) {
	tf, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}

	key := keyFor(tf.Name(), tf.Style())
	registry.mu.Lock()
	registry.faces[key] = tf
	registry.mu.Unlock()
	typefaceCache.Delete(key)

	Logger().Info("typeface: registered", "family", tf.Name(), "style", tf.Style())
	return tf, nil
}

// RegisterDir registers every .ttf, .otf and .ttc file below dir. Files
// that fail to parse are logged and skipped. It returns the number of
// faces registered.
func RegisterDir(dir string) (int, error) {
	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ttf", ".otf", ".ttc", ".otc":
		default:
			return nil
		}

		data, err := os.ReadFile(path) //nolint:gosec // walking a caller-chosen directory
		if err != nil {
			Logger().Warn("typeface: cannot read font file", "path", path, "err", err)
			return nil
		}
		n += registerFile(path, data)
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("typeface: scan %s: %w", dir, err)
	}
	return n, nil
}

// registerFile registers each face in data and returns how many succeeded.
func registerFile(path string, data []byte) int {
	faces := 1
	if coll, err := opentype.ParseCollection(data); err == nil {
		faces = coll.NumFonts()
	}

	n := 0
	for i := range faces {
		if _, err := Register(data, WithCollectionIndex(i)); err != nil {
			Logger().Warn("typeface: cannot parse font file", "path", path, "index", i, "err", err)
			continue
		}
		n++
	}
	return n
}

// Registered returns the number of typefaces added with Register.
func Registered() int {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return len(registry.faces)
}

// ForFont returns a typeface for f, never nil.
//
// Lookup order: the cache, registered typefaces, the built-in Go fonts by
// family and style, the Go family in the requested style, and finally Go
// Regular. Candidates that are not suitable for f are skipped.
//
// Callers must not rely on getting the same value twice: an evicted entry
// is looked up again.
func ForFont(f Font) Typeface {
	key := keyFor(f.Family, f.Style)
	return typefaceCache.GetOrCreate(key, func() Typeface {
		return findTypeface(f, key)
	})
}

func findTypeface(f Font, key faceKey) Typeface {
	registry.mu.RLock()
	tf, ok := registry.faces[key]
	registry.mu.RUnlock()
	if ok && tf.IsSuitableForFont(f) {
		return tf
	}

	fallbackKey := keyFor(FallbackFamily, key.style)
	for _, want := range []faceKey{key, fallbackKey} {
		for _, b := range builtins {
			if keyFor(b.family, b.style) != want {
				continue
			}
			if tf := loadBuiltin(b); tf != nil && tf.IsSuitableForFont(f) {
				return tf
			}
		}
	}

	Logger().Debug("typeface: using fallback", "family", f.Family, "style", f.Style)
	tf = loadBuiltin(builtins[0])
	if tf == nil {
		panic("typeface: built-in fallback font is unreadable")
	}
	return tf
}

func loadBuiltin(b builtinFont) Typeface {
	tf, err := b.load()
	if err != nil {
		Logger().Warn("typeface: cannot parse built-in font", "family", b.family, "style", b.style, "err", err)
		return nil
	}
	return tf
}
