package types

// ViewState records which property currently partitions cards into
// columns. A nil GroupBy means no grouping is active.
type ViewState struct {
	GroupBy *string `json:"group_by"`
}

// Theme names recognized by the persistence store.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
