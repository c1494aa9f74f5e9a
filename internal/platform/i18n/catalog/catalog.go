package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other catalog falls back to.
const BaseLocale = "en-US"

// coreNamespace is the only namespace allowed to define core.* keys.
const coreNamespace = "core"

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultBundle = mustLoadEmbedded()

type fileDocument struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

type localeMessages struct {
	byKey       map[string]string
	byNamespace map[string]map[string]string
}

// Bundle holds every locale catalog. Keys are unique within a locale across
// its namespaces.
type Bundle struct {
	locales map[string]*localeMessages
}

// Default returns the embedded bundle, already registered with x/text.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded parses the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embedded)
}

// LoadFromFS parses locales/<locale>/<namespace>.yaml files from fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	files, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no catalog files found")
	}
	slices.Sort(files)

	b := &Bundle{locales: make(map[string]*localeMessages)}
	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}
		var doc fileDocument
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode catalog %s: %w", name, err)
		}
		if err := b.merge(name, doc); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return b, nil
}

func (b *Bundle) merge(name string, doc fileDocument) error {
	dirLocale := path.Base(path.Dir(name))
	fileNamespace := strings.TrimSuffix(path.Base(name), path.Ext(name))

	locale := strings.TrimSpace(doc.Locale)
	namespace := strings.TrimSpace(doc.Namespace)
	switch {
	case locale == "":
		return errors.New("locale is required")
	case locale != dirLocale:
		return fmt.Errorf("locale %q does not match directory %q", locale, dirLocale)
	case namespace == "":
		return errors.New("namespace is required")
	case namespace != fileNamespace:
		return fmt.Errorf("namespace %q does not match file name %q", namespace, fileNamespace)
	case len(doc.Messages) == 0:
		return errors.New("messages are required")
	}

	entry := b.locales[locale]
	if entry == nil {
		entry = &localeMessages{
			byKey:       make(map[string]string),
			byNamespace: make(map[string]map[string]string),
		}
		b.locales[locale] = entry
	}
	if _, dup := entry.byNamespace[namespace]; dup {
		return fmt.Errorf("namespace %q already defined for %s", namespace, locale)
	}

	scoped := make(map[string]string, len(doc.Messages))
	for rawKey, text := range doc.Messages {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return errors.New("message key cannot be blank")
		}
		if strings.HasPrefix(key, coreNamespace+".") && namespace != coreNamespace {
			return fmt.Errorf("key %q belongs in the %s namespace", key, coreNamespace)
		}
		if _, dup := entry.byKey[key]; dup {
			return fmt.Errorf("duplicate key %q in %s", key, locale)
		}
		entry.byKey[key] = text
		scoped[key] = text
	}
	entry.byNamespace[namespace] = scoped
	return nil
}

// Register installs every locale with x/text/message under its full tag and
// its base language. Keys missing from a locale are registered with the base
// locale text.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	baseKeys := sortedKeys(b.LocaleMessages(BaseLocale))
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if short := language.Make(base.String()); short.String() != tag.String() {
				tags = append(tags, short)
			}
		}
		keys := slices.Concat(baseKeys, sortedKeys(b.LocaleMessages(locale)))
		slices.Sort(keys)
		for _, key := range slices.Compact(keys) {
			text, _ := b.Message(locale, key)
			for _, t := range tags {
				if err := message.SetString(t, key, text); err != nil {
					return fmt.Errorf("register %s %q: %w", t, key, err)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the bundle defines locale.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns the defined locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return sortedKeys(b.locales)
}

// Tags returns the locale tags with the base locale first, ready for a
// language.Matcher.
func (b *Bundle) Tags() []language.Tag {
	if b == nil {
		return nil
	}
	tags := []language.Tag{language.Make(BaseLocale)}
	for _, locale := range b.Locales() {
		if locale != BaseLocale {
			tags = append(tags, language.Make(locale))
		}
	}
	return tags
}

// LocaleMessages returns a copy of one locale's messages without fallback.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	entry := b.lookup(locale)
	if entry == nil {
		return map[string]string{}
	}
	return cloneMessages(entry.byKey)
}

// NamespaceMessages returns a copy of one namespace of a locale.
func (b *Bundle) NamespaceMessages(locale, namespace string) map[string]string {
	entry := b.lookup(locale)
	if entry == nil {
		return map[string]string{}
	}
	return cloneMessages(entry.byNamespace[strings.TrimSpace(namespace)])
}

// Message looks key up in locale, then in the base locale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if entry := b.lookup(locale); entry != nil {
		if text, ok := entry.byKey[key]; ok {
			return text, true
		}
	}
	if entry := b.lookup(BaseLocale); entry != nil {
		text, ok := entry.byKey[key]
		return text, ok
	}
	return "", false
}

func (b *Bundle) lookup(locale string) *localeMessages {
	if b == nil {
		return nil
	}
	return b.locales[strings.TrimSpace(locale)]
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func cloneMessages(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func mustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := b.Register(); err != nil {
		panic(err)
	}
	return b
}
