package formula

// Record is the structured metadata extracted from a single formula script.
// Name is always present and non-empty; the optional fields are set only
// when the script declared them with a plain string literal.
type Record struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	Homepage     *string  `json:"homepage,omitempty"`
	URL          *string  `json:"url,omitempty"`
	SHA256       *string  `json:"sha256,omitempty"`
	Dependencies []string `json:"dependencies"`
}
