package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Cursor    int
	Count     int
	QueryText string
	IsLoading bool
}

// CurrentIndex returns the highlighted result
func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// TotalItems returns the number of results on screen
func (c *ModelContext) TotalItems() int {
	return c.Count
}

// Query returns the current query text
func (c *ModelContext) Query() string {
	return c.QueryText
}

// Loading reports whether a fetch is unresolved
func (c *ModelContext) Loading() bool {
	return c.IsLoading
}
