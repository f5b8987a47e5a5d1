package formula

import "github.com/zclconf/go-cty/cty"

// Attributes holds the optional metadata read back from a capture
// environment. Absence of a field is never an error: a formula
// legitimately may omit any of them.
type Attributes struct {
	Description *string
	Homepage    *string
	URL         *string
	SHA256      *string
}

// RetrieveAttributes queries the capture environment for each known
// declaration, mapping never-set values to nil.
func RetrieveAttributes(capture *Capture) Attributes {
	return Attributes{
		Description: stringOrNil(capture.Get(DeclDesc)),
		Homepage:    stringOrNil(capture.Get(DeclHomepage)),
		URL:         stringOrNil(capture.Get(DeclURL)),
		SHA256:      stringOrNil(capture.Get(DeclSHA256)),
	}
}

// stringOrNil unwraps a captured string value, treating null or non-string
// values as absent.
func stringOrNil(v cty.Value) *string {
	if v.IsNull() || v.Type() != cty.String {
		return nil
	}
	s := v.AsString()
	return &s
}
