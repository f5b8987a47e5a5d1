package formula

import "github.com/zclconf/go-cty/cty"

// Declaration keywords whose arguments the capture environment records.
const (
	DeclDesc     = "desc"
	DeclHomepage = "homepage"
	DeclURL      = "url"
	DeclSHA256   = "sha256"
)

// acceptedDeclarations names declarative calls the environment tolerates as
// no-ops. The current filter never forwards them, but a widened filter must
// not be able to make evaluation fail on a legitimate declaration.
var acceptedDeclarations = map[string]struct{}{
	"depends_on": {},
	"license":    {},
	"mirror":     {},
	"version":    {},
	"revision":   {},
	"head":       {},
	"bottle":     {},
	"livecheck":  {},
}

// Capture records the metadata declarations of a single evaluation. It is
// created fresh per parse and owned solely by that call; nothing here is
// shared across evaluations, so two formulas deriving the same class
// identifier cannot observe each other's values.
type Capture struct {
	values map[string]cty.Value
}

// NewCapture returns an empty capture environment.
func NewCapture() *Capture {
	return &Capture{values: make(map[string]cty.Value)}
}

// Set stores the argument of a captured declaration. A later declaration of
// the same keyword overrides an earlier one.
func (c *Capture) Set(keyword string, value cty.Value) {
	c.values[keyword] = value
}

// Get returns the stored value for a captured declaration, or a null string
// when the declaration never appeared in the evaluated body.
func (c *Capture) Get(keyword string) cty.Value {
	if v, ok := c.values[keyword]; ok {
		return v
	}
	return cty.NullVal(cty.String)
}

// captures reports whether keyword is one of the recorded declarations.
func captures(keyword string) bool {
	switch keyword {
	case DeclDesc, DeclHomepage, DeclURL, DeclSHA256:
		return true
	}
	return false
}

// accepts reports whether keyword is a declarative call the environment
// evaluates as a no-op.
func accepts(keyword string) bool {
	_, ok := acceptedDeclarations[keyword]
	return ok
}
