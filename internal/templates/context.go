// Package templates renders the minimal {{key}} placeholder language used by
// the quickstart's Cargo.toml and README.
package templates

// Context keys populated by the scaffold.
const (
	KeyDescription = "description"
	KeyFirstName   = "firstName"
	KeyLastName    = "lastName"
	KeyEmail       = "email"
	KeyAlias       = "alias"
	KeyTitle       = "title"
	KeyProjectName = "projectName"
)

// Context is a flat, read-only mapping from placeholder keys to literal values.
type Context struct {
	values map[string]string
}

// NewContext copies values into a new Context. Later changes to values are
// not observed by the Context.
func NewContext(values map[string]string) Context {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Context{values: copied}
}

// Lookup returns the value for key and whether it is present.
func (c Context) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of keys in the context.
func (c Context) Len() int {
	return len(c.values)
}
