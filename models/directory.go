package models

import "sort"

// Directory maps department names to the employees working there.
//
// Employee order is insertion order until SortedEmployees is called, which
// sorts the stored list in place. A department whose last employee is
// removed stays in the directory with an empty list.
type Directory struct {
	depts map[string][]string
}

func NewDirectory() *Directory {
	return &Directory{depts: make(map[string][]string)}
}

// Add appends name to dept, creating the department when needed.
func (d *Directory) Add(name, dept string) {
	d.depts[dept] = append(d.depts[dept], name)
}

// Remove deletes the first occurrence of name from dept. It reports whether
// anything was removed.
func (d *Directory) Remove(name, dept string) bool {
	names, ok := d.depts[dept]
	if !ok {
		return false
	}
	for i, n := range names {
		if n == name {
			d.depts[dept] = append(names[:i], names[i+1:]...)
			return true
		}
	}
	return false
}

// Employees returns the stored list for dept in its current order.
func (d *Directory) Employees(dept string) ([]string, bool) {
	names, ok := d.depts[dept]
	return names, ok
}

// SortedEmployees sorts the list for dept in place and returns it.
func (d *Directory) SortedEmployees(dept string) []string {
	names := d.depts[dept]
	sort.Strings(names)
	return names
}

// Departments returns department names in lexicographic order, which keeps
// listings stable between runs.
func (d *Directory) Departments() []string {
	out := make([]string, 0, len(d.depts))
	for k := range d.depts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of departments.
func (d *Directory) Len() int { return len(d.depts) }
