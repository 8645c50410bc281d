// Command dequedemo exercises the growable deque with a fixed sequence of
// front and back pushes, crossing a growth boundary, and prints the result.
//
// Usage:
//
//	go run ./cmd/dequedemo
package main

import (
	"flag"
	"fmt"

	"github.com/randomizedcoder/go-ring-deque/internal/deque"
)

func main() {
	drain := flag.Bool("drain", false, "pop and print every element front-to-back")
	flag.Parse()

	d := deque.New[int]()
	d.PushFront(5)
	d.PushFront(6)
	d.PushFront(7)
	d.PushBack(11)
	d.PushBack(12)
	d.PushFront(9)
	d.PushFront(9)
	d.PushFront(9)
	d.PushFront(9)

	fmt.Println(d)

	if *drain {
		fmt.Println("\nDraining front-to-back:")
		for {
			v, ok := d.PopFront()
			if !ok {
				break
			}
			fmt.Printf("  %d\n", v)
		}
	}
}
