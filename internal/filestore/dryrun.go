package filestore

import (
	"fmt"
	"io/fs"
)

// Change is a pending modification recorded by a DryRun store.
type Change struct {
	Path    string
	Before  string
	After   string
	Existed bool
	Removed bool
}

// DryRun records writes, renames and removals in memory instead of applying
// them. Reads see the recorded changes layered over the base store.
type DryRun struct {
	base    *Store
	pending map[string]*string
	before  map[string]*string
	order   []string
}

// NewDryRun layers a change recorder over base.
func NewDryRun(base *Store) *DryRun {
	return &DryRun{
		base:    base,
		pending: make(map[string]*string),
		before:  make(map[string]*string),
	}
}

// ReadText returns the pending contents of path, or the base contents.
func (d *DryRun) ReadText(path string) (string, error) {
	if v, ok := d.pending[path]; ok {
		if v == nil {
			return "", fmt.Errorf("reading %s: %w", path, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist})
		}
		return *v, nil
	}
	return d.base.ReadText(path)
}

// WriteText records new contents for path.
func (d *DryRun) WriteText(path, text string) error {
	d.record(path, &text)
	return nil
}

// Rename records oldPath as removed and newPath as holding its contents.
func (d *DryRun) Rename(oldPath, newPath string) error {
	text, err := d.ReadText(oldPath)
	if err != nil {
		return fmt.Errorf("renaming %s to %s: %w", oldPath, newPath, err)
	}
	d.record(newPath, &text)
	d.record(oldPath, nil)
	return nil
}

// Remove records path as removed. The recursive flag is accepted for
// interface compatibility; directory contents are not tracked.
func (d *DryRun) Remove(path string, _ bool) error {
	ok, err := d.Exists(path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("removing %s: %w", path, fs.ErrNotExist)
	}
	d.record(path, nil)
	return nil
}

// Exists reports whether path exists after the recorded changes.
func (d *DryRun) Exists(path string) (bool, error) {
	if v, ok := d.pending[path]; ok {
		return v != nil, nil
	}
	return d.base.Exists(path)
}

// Changes returns the recorded changes in first-touched order. Paths whose
// final contents equal their original contents are omitted.
func (d *DryRun) Changes() []Change {
	changes := make([]Change, 0, len(d.order))
	for _, p := range d.order {
		before, after := d.before[p], d.pending[p]
		c := Change{Path: p, Existed: before != nil, Removed: after == nil}
		if before != nil {
			c.Before = *before
		}
		if after != nil {
			c.After = *after
		}
		if c.Existed && !c.Removed && c.Before == c.After {
			continue
		}
		if !c.Existed && c.Removed {
			continue
		}
		changes = append(changes, c)
	}
	return changes
}

func (d *DryRun) record(path string, text *string) {
	if _, seen := d.pending[path]; !seen {
		d.order = append(d.order, path)
		if orig, err := d.base.ReadText(path); err == nil {
			d.before[path] = &orig
		} else {
			d.before[path] = nil
		}
	}
	d.pending[path] = text
}
