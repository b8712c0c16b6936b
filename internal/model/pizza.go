package model

// Pizza is a read-only menu entry.
type Pizza struct {
	Name        string `yaml:"name"`
	Ingredients string `yaml:"ingredients"`
	Price       int    `yaml:"price"`
	PhotoName   string `yaml:"photo_name"`
	SoldOut     bool   `yaml:"sold_out"`
}
