package dyncon_test

import (
	"fmt"

	"github.com/katalvlaran/dyntree/dyncon"
)

// ExampleForest builds two components, joins them, splits them again and
// removes a cycle edge that has a replacement.
func ExampleForest() {
	f, err := dyncon.New([]dyncon.Edge{
		{ID: "1", From: "1", To: "2"}, {ID: "2", From: "1", To: "3"},
		{ID: "3", From: "1", To: "5"}, {ID: "4", From: "2", To: "4"},
		{ID: "5", From: "3", To: "4"}, {ID: "6", From: "3", To: "5"},
		{ID: "7", From: "6", To: "7"}, {ID: "8", From: "6", To: "8"},
		{ID: "9", From: "7", To: "9"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ask := func(u, v string) {
		ok, _ := f.Connected(u, v)
		fmt.Printf("%s~%s %v\n", u, v, ok)
	}

	ask("1", "4")
	ask("2", "8")

	_ = f.AddEdge("1", "6", "10")
	ask("3", "7")

	_ = f.DeleteEdge("10")
	ask("1", "6")

	_ = f.DeleteEdge("5")
	ask("3", "4")
	// Output:
	// 1~4 true
	// 2~8 false
	// 3~7 true
	// 1~6 false
	// 3~4 true
}

// ExampleWithOnSplit reports bridges as they are cut.
func ExampleWithOnSplit() {
	f, _ := dyncon.New([]dyncon.Edge{
		{ID: "ab", From: "a", To: "b"},
		{ID: "bc", From: "b", To: "c"},
	}, dyncon.WithOnSplit(func(e dyncon.Edge) {
		fmt.Printf("split at %s (%s-%s)\n", e.ID, e.From, e.To)
	}))

	_ = f.DeleteEdge("ab")
	fmt.Println(f.Components())
	// Output:
	// split at ab (a-b)
	// [[a] [b c]]
}
