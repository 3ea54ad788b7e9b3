package goreport

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font/sfnt"
)

// FontOptions selects a TrueType family for the fpdf surface. Without it
// the surface uses the built-in Helvetica, which only covers cp1252.
type FontOptions struct {
	// Family is the font family name, e.g. "DejaVu Sans".
	Family string
	// Dirs lists extra directories searched before the OS font folders.
	Dirs []string
	// Locator allows sharing a scanned FontLocator across documents.
	// If nil, a new FontLocator is created using Dirs.
	Locator *FontLocator
}

// FontLocator finds TrueType font files by family name.
// It searches system font directories and user-specified directories
// for .ttf files and indexes them by file name, family and full name.
type FontLocator struct {
	mu      sync.RWMutex
	dirs    []string          // directories to search for fonts
	files   map[string][]byte // lowercase name -> raw TTF data
	scanned bool
}

// NewFontLocator creates a FontLocator that searches the given directories
// plus the OS default font directories.
func NewFontLocator(extraDirs ...string) *FontLocator {
	dirs := append(append([]string{}, extraDirs...), systemFontDirs()...)
	return &FontLocator{
		dirs:  dirs,
		files: make(map[string][]byte),
	}
}

// Find returns the TTF data for the family, trying bold variants first when
// bold is set. It returns an error if no matching font is indexed.
func (fl *FontLocator) Find(family string, bold bool) ([]byte, error) {
	fl.ensureScanned()

	fl.mu.RLock()
	defer fl.mu.RUnlock()

	lower := strings.ToLower(family)
	if bold {
		for _, suffix := range []string{" bold", "-bold", "bd", "b"} {
			if data, ok := fl.files[lower+suffix]; ok {
				return data, nil
			}
		}
		return nil, fmt.Errorf("bold variant of font %q not found", family)
	}
	for _, suffix := range []string{"", " regular", "-regular"} {
		if data, ok := fl.files[lower+suffix]; ok {
			return data, nil
		}
	}
	return nil, fmt.Errorf("font %q not found", family)
}

// LoadFontData registers TrueType data under the given name in addition to
// the names found in its name table.
func (fl *FontLocator) LoadFontData(name string, data []byte) error {
	f, err := sfnt.Parse(data)
	if err != nil {
		return err
	}
	fl.mu.Lock()
	fl.files[strings.ToLower(name)] = data
	fl.registerByName(f, data)
	fl.mu.Unlock()
	return nil
}

func (fl *FontLocator) ensureScanned() {
	fl.mu.RLock()
	scanned := fl.scanned
	fl.mu.RUnlock()
	if scanned {
		return
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.scanned {
		return
	}
	fl.scanned = true

	for _, dir := range fl.dirs {
		fl.scanDir(dir, 0)
	}
}

// maxFontScanDepth limits recursive directory traversal when scanning for fonts.
const maxFontScanDepth = 3

// maxFontFileSize limits the size of individual font files loaded into memory.
const maxFontFileSize = 20 << 20 // 20 MB

func (fl *FontLocator) scanDir(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			fl.scanDir(filepath.Join(dir, entry.Name()), depth+1)
			continue
		}
		lower := strings.ToLower(entry.Name())
		// fpdf embeds TrueType outlines only.
		if !strings.HasSuffix(lower, ".ttf") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		f, err := sfnt.Parse(data)
		if err != nil {
			continue
		}
		baseName := strings.TrimSuffix(lower, filepath.Ext(lower))
		if _, ok := fl.files[baseName]; !ok {
			fl.files[baseName] = data
		}
		fl.registerByName(f, data)
	}
}

// registerByName indexes data under the names from the font's name table:
// the full name, and the family name for regular faces or family plus
// subfamily ("dejavu sans bold") otherwise. The first file seen for a name
// wins.
func (fl *FontLocator) registerByName(f *sfnt.Font, data []byte) {
	var buf sfnt.Buffer
	family, _ := f.Name(&buf, sfnt.NameIDFamily)
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	full, _ := f.Name(&buf, sfnt.NameIDFull)

	var keys []string
	if family != "" {
		switch strings.ToLower(sub) {
		case "", "regular", "book", "normal", "roman":
			keys = append(keys, family)
		default:
			keys = append(keys, family+" "+sub)
		}
	}
	if full != "" {
		keys = append(keys, full)
	}
	for _, k := range keys {
		key := strings.ToLower(k)
		if _, ok := fl.files[key]; !ok {
			fl.files[key] = data
		}
	}
}

// systemFontDirs returns OS-specific font directories.
func systemFontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{filepath.Join(windir, "Fonts")}
	case "darwin":
		home, _ := os.UserHomeDir()
		dirs := []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default: // linux, freebsd, etc.
		home, _ := os.UserHomeDir()
		dirs := []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"))
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}
