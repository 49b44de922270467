package arraybuilder_test

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/hupe1980/arraybuilder"
)

// ExampleNew demonstrates filling a builder to capacity and moving the
// finished array out.
func ExampleNew() {
	b := arraybuilder.New[int](4)
	for i := 0; !b.IsFull(); i++ {
		b.Push(i * i)
	}

	squares, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(squares)
	// Output: [0 1 4 9]
}

// ExampleBuilder_Build demonstrates that an early Build refuses without
// losing progress.
func ExampleBuilder_Build() {
	b := arraybuilder.New[int](3)
	b.Push(1)

	if _, err := b.Build(); errors.Is(err, arraybuilder.ErrNotFull) {
		fmt.Println("not full yet:", b.Len(), "of", b.Cap())
	}

	b.Push(2)
	b.Push(3)

	out, _ := b.Build()
	fmt.Println(out)
	// Output:
	// not full yet: 1 of 3
	// [1 2 3]
}

// ExampleBuilder_Pop demonstrates replacing the most recent element.
func ExampleBuilder_Pop() {
	b := arraybuilder.From([]int{1, 2, 3, 4})

	v, _ := b.Pop()
	fmt.Println(v)

	b.Push(16)

	out, _ := b.Build()
	fmt.Println(out)
	// Output:
	// 4
	// [1 2 3 16]
}

func ExampleBuilder_TryPush() {
	b := arraybuilder.New[int](2)

	fmt.Println(b.TryPush(1), b.TryPush(2), b.TryPush(3))
	// Output: true true false
}

// ExampleWithOnRelease demonstrates cleanup of elements the caller
// never received.
func ExampleWithOnRelease() {
	b := arraybuilder.New[string](3, arraybuilder.WithOnRelease(func(s string) {
		fmt.Println("releasing", s)
	}))
	defer b.Release()

	b.Push("conn-1")
	b.Push("conn-2")
	// Output:
	// releasing conn-1
	// releasing conn-2
}

// ExampleChunker demonstrates regrouping a stream into fixed-size
// arrays, remainder included.
func ExampleChunker() {
	seq := slices.Values([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	c := arraybuilder.NewChunker(seq, 4)
	defer c.Stop()

	for chunk, ok := c.Next(); ok; chunk, ok = c.Next() {
		fmt.Println(chunk)
	}

	fmt.Println("remaining:", c.Remaining())
	// Output:
	// [0 1 2 3]
	// [4 5 6 7]
	// remaining: [8 9]
}

// ExampleChunks demonstrates the range-over form; the short tail is
// dropped.
func ExampleChunks() {
	for chunk := range arraybuilder.Chunks(slices.Values([]byte("chunking")), 3) {
		fmt.Printf("%s\n", chunk)
	}
	// Output:
	// chu
	// nki
}
