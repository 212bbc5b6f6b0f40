// Package catalog holds the ordered list of annotation class names.
// A class id is the position of its name in the list.
package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ConfigError reports a classes file that cannot back a session.
type ConfigError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("class catalog %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("class catalog %s: %s", e.Path, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NotFoundError is returned when a class name is not in the catalog.
type NotFoundError struct{ Name string }

func (e *NotFoundError) Error() string { return fmt.Sprintf("class %q not found", e.Name) }

// Catalog is immutable once loaded.
type Catalog struct {
	names []string
}

// New builds a catalog from names, applying the same rules as Load.
func New(names []string, maxClasses int) (*Catalog, error) {
	return build("<memory>", names, maxClasses)
}

// Load reads one class name per line. Blank lines are ignored.
// A missing, empty or oversized file is a *ConfigError.
// maxClasses <= 0 disables the size bound.
func Load(path string, maxClasses int) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: "cannot open classes file", Err: err}
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		names = append(names, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &ConfigError{Path: path, Reason: "read failed", Err: err}
	}
	return build(path, names, maxClasses)
}

func build(path string, raw []string, maxClasses int) (*Catalog, error) {
	names := make([]string, 0, len(raw))
	for _, n := range raw {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		names = append(names, n)
	}
	if len(names) == 0 {
		return nil, &ConfigError{Path: path, Reason: "no classes defined"}
	}
	if maxClasses > 0 && len(names) > maxClasses {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("%d classes exceed the %d available colours", len(names), maxClasses)}
	}
	return &Catalog{names: names}, nil
}

// Len returns the number of classes.
func (c *Catalog) Len() int { return len(c.names) }

// Name returns the class name for id. An id outside the catalog panics.
func (c *Catalog) Name(id int) string { return c.names[id] }

// Contains reports whether id is a valid class id.
func (c *Catalog) Contains(id int) bool { return id >= 0 && id < len(c.names) }

// ID returns the id of the first class called name.
func (c *Catalog) ID(name string) (int, error) {
	for i, n := range c.names {
		if n == name {
			return i, nil
		}
	}
	return -1, &NotFoundError{Name: name}
}

// Names returns a copy of the class names in id order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
