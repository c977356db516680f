package model

// Document is a named piece of text ready to be published: a rendered
// problem or a generated solution stub.
type Document struct {
	Name     string
	Language string
	Content  string
}
