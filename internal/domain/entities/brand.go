package entities

// Brand is a supplier catalog brand, normalized by the catalog adapter.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
