package navigate_test

import (
	"fmt"

	"github.com/erraggy/jsonnav/navigate"
)

func ExampleCollectLeaves() {
	doc := map[string]any{
		"order": map[string]any{
			"items": []any{
				map[string]any{"sku": "A-1"},
				map[string]any{"sku": "B-7"},
			},
		},
	}

	collector, err := navigate.CollectLeaves(doc, "order.items.sku")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, leaf := range collector.All {
		fmt.Printf("%s = %v\n", leaf.Location, leaf.Value)
	}
	// Output:
	// order.items.sku = A-1
	// order.items.sku = B-7
}

func ExampleHooks() {
	doc := map[string]any{
		"service": map[string]any{"name": "billing", "port": 8080.0},
	}

	hooks := &navigate.Hooks{
		ObjectLeaf: func(cur *navigate.Cursor, value any) error {
			fmt.Printf("%s: %v\n", cur.Current(), value)
			return nil
		},
	}
	nav, err := navigate.New(hooks, "service.name", "service.port")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := nav.Navigate(doc); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// name: billing
	// port: 8080
}
