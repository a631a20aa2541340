package models

// Category groups products; Parent is an optional self-reference.
// ID stays 0 until the mapper persists the category — the mapper is the
// only writer of a real id.
type Category struct {
	ID     int64
	Name   string
	Parent *Category
	Desc   string
	Img    string
}

// ParentID reports the parent's id, or 0 for a root category.
func (c *Category) ParentID() int64 {
	if c.Parent == nil {
		return 0
	}
	return c.Parent.ID
}
