package collection_test

import (
	"fmt"

	"github.com/kbukum/tabkit/collection"
	"github.com/kbukum/tabkit/order"
)

type product struct {
	Name     string
	Category string
	Price    float64
}

var catalog = []product{
	{"Laptop Pro", "Electronics", 1500},
	{"Mouse Pad XL", "Accessories", 15.50},
	{"4K Monitor", "Electronics", 450},
}

func ExampleGroupBy() {
	groups := collection.GroupBy(catalog, func(p product) string { return p.Category })
	for category, members := range groups.All() {
		fmt.Println(category, len(members))
	}
	// Output:
	// Electronics 2
	// Accessories 1
}

func ExampleMaxBy() {
	byPrice := order.By(func(p product) float64 { return p.Price })

	best, ok := collection.MaxBy(catalog, byPrice)
	fmt.Println(best.Name, ok)

	_, ok = collection.MaxBy([]product{}, byPrice)
	fmt.Println(ok)
	// Output:
	// Laptop Pro true
	// false
}
