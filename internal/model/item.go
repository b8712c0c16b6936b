package model

// Item is one packing-list entry.
type Item struct {
	ID          int    `yaml:"id"`
	Description string `yaml:"description"`
	Quantity    int    `yaml:"quantity"`
	Packed      bool   `yaml:"packed"`
}
