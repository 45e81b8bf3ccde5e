package bst_test

import (
	"fmt"

	"github.com/npillmayer/fabric/bst"
)

func ExampleTree_Insert() {
	var t bst.Tree[int, int]
	t.Insert(3, +1)
	t.Insert(7, -1)
	t.Insert(3, +1)

	for y, delta := range t.All() {
		fmt.Println(y, delta)
	}

	// Output:
	// 3 2
	// 7 -1
}

func ExampleTree_Remove() {
	var m bst.Tree[int, int]
	for _, k := range []int{5, 4, 8, 7, 6} {
		m.Insert(k, k*10)
	}
	m.Remove(5)
	fmt.Println(m.Root().Key(), m.Inorder())

	// Output:
	// 6 [{4 40} {6 60} {7 70} {8 80}]
}
