package metadata

import "strings"

// Metadata holds the package fields consumed by the scaffold.
type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	Author      string `json:"author" yaml:"author"`
}

// Person is the object form of the npm "author" field.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// String renders the person in the npm shorthand "Name <email> (url)".
func (p Person) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Email != "" {
		b.WriteString(" <" + p.Email + ">")
	}
	if p.URL != "" {
		b.WriteString(" (" + p.URL + ")")
	}
	return b.String()
}

