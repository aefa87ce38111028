package category

// Category is a shared classification label. Categories are global and
// read-only from the application's point of view; the set is seeded by a
// migration and shared across all users.
type Category struct {
	Id    int
	Name  string
	Color string
	Icon  string
}

// Display defaults for expenses with no (or a removed) category reference.
const (
	FallbackName  = "Other"
	FallbackColor = "#94a3b8"
	FallbackIcon  = "tag"
)
