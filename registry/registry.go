// Package registry loads error-code definitions from YAML and keeps
// them hot-reloadable. Definition files are operator-supplied and
// therefore untrusted: every entry goes through checked construction,
// and rejected entries surface only as sanitized report lines unless a
// trusted terminal asks for the full detail.
package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/palisade/taxonomy"
)

// debounceDefault is the debounce interval for file events.
const debounceDefault = 200 * time.Millisecond

// Entry is one code definition as written in the YAML file.
type Entry struct {
	Name      string `yaml:"name"`
	Namespace string `yaml:"namespace"`
	Code      uint16 `yaml:"code"`
	Category  string `yaml:"category"`
	Impact    uint16 `yaml:"impact"`
	Retryable bool   `yaml:"retryable"`
}

// File is the top-level YAML document.
type File struct {
	Codes []Entry `yaml:"codes"`
}

// Issue records a rejected entry. Detail may hold a *taxonomy.Violation
// or a plain parse error; Public is always safe to print.
type Issue struct {
	Name   string
	Detail error
	Public string
}

// Registry is a named set of accepted codes plus the issues collected
// while loading. Lookup and reporting are safe for concurrent use with
// Watch-driven reloads.
type Registry struct {
	mu     sync.RWMutex
	path   string
	codes  map[string]*taxonomy.Code
	issues []Issue
}

// Load parses a YAML definition file. Entries that fail checked
// construction are collected as issues, not errors: a partially valid
// file still yields a usable registry. Only unreadable or unparseable
// files fail outright.
func Load(path string) (*Registry, error) {
	codes, issues, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	return &Registry{path: path, codes: codes, issues: issues}, nil
}

func parseFile(path string) (map[string]*taxonomy.Code, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read code definitions: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("failed to parse code definitions: %w", err)
	}

	codes := make(map[string]*taxonomy.Code, len(f.Codes))
	var issues []Issue
	for _, e := range f.Codes {
		code, issue := buildEntry(e, codes)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		codes[e.Name] = code
	}
	return codes, issues, nil
}

// buildEntry runs one definition through checked construction.
func buildEntry(e Entry, existing map[string]*taxonomy.Code) (*taxonomy.Code, *Issue) {
	if e.Name == "" {
		return nil, &Issue{
			Detail: fmt.Errorf("entry has no name"),
			Public: "Invalid error configuration",
		}
	}
	if _, dup := existing[e.Name]; dup {
		return nil, &Issue{
			Name:   e.Name,
			Detail: fmt.Errorf("duplicate code name %q", e.Name),
			Public: "Invalid error configuration",
		}
	}

	ns, ok := taxonomy.LookupNamespace(e.Namespace)
	if !ok {
		return nil, &Issue{
			Name:   e.Name,
			Detail: fmt.Errorf("unknown namespace %q", e.Namespace),
			Public: "Invalid error configuration",
		}
	}
	cat, ok := taxonomy.LookupCategory(e.Category)
	if !ok {
		return nil, &Issue{
			Name:   e.Name,
			Detail: fmt.Errorf("unknown category %q", e.Category),
			Public: "Invalid error configuration",
		}
	}
	impact, err := taxonomy.NewImpactScore(e.Impact)
	if err != nil {
		return nil, &Issue{
			Name:   e.Name,
			Detail: err,
			Public: "Invalid error severity",
		}
	}

	code, violation := taxonomy.New(ns, e.Code, cat, impact, e.Retryable)
	if violation != nil {
		return nil, &Issue{
			Name:   e.Name,
			Detail: violation,
			Public: violation.Public(),
		}
	}
	return code, nil
}

// Lookup returns the code registered under name.
func (r *Registry) Lookup(name string) (*taxonomy.Code, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codes[name]
	return c, ok
}

// Names returns the accepted code names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.codes))
	for n := range r.codes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of accepted codes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.codes)
}

// SanitizedReport returns one safe line per rejected entry. This is
// the only rejection surface that may cross to untrusted output.
func (r *Registry) SanitizedReport() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.issues) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.issues))
	for _, is := range r.issues {
		name := is.Name
		if name == "" {
			name = "(unnamed)"
		}
		out = append(out, fmt.Sprintf("%s: %s", name, is.Public))
	}
	return out
}

// Issues returns the full rejection details. Trusted terminals only.
func (r *Registry) Issues() []Issue {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Reload re-parses the backing file and swaps the snapshot in. An
// unreadable or unparseable file leaves the previous snapshot intact.
func (r *Registry) Reload() error {
	codes, issues, err := parseFile(r.path)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.codes = codes
	r.issues = issues
	r.mu.Unlock()
	return nil
}

// Watch reloads the registry whenever its backing file changes. Events
// are debounced with a single timer. onReload receives the result of
// each reload attempt; a failed reload keeps the previous snapshot.
// Blocks until ctx is cancelled.
func (r *Registry) Watch(ctx context.Context, onReload func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors replace files on
	// save and a file watch would die with the old inode.
	dir := filepath.Dir(r.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(r.path)

	debounceTimer := time.NewTimer(debounceDefault)
	debounceTimer.Stop()
	defer debounceTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-debounceTimer.C:
			if onReload != nil {
				onReload(r.Reload())
			} else {
				_ = r.Reload()
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !debounceTimer.Stop() {
				select {
				case <-debounceTimer.C:
				default:
				}
			}
			debounceTimer.Reset(debounceDefault)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			_ = err
		}
	}
}
