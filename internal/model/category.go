package model

// Category is a spending category. The hierarchy is self-referential:
// a nil ParentID marks a top-level category. Ingestion never assigns
// categories; the table exists so classification can be layered on
// later without a schema change.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
}
