package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"owned_list/heap/linked_list"

	"github.com/dustin/go-humanize"
)

func show[T any](label string, v T, ok bool) {
	if !ok {
		fmt.Printf("%s: none\n", label)
		return
	}
	fmt.Printf("%s: %v\n", label, v)
}

func fresh() *linked_list.List[int] {
	l := linked_list.New[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)
	return l
}

func main() {
	n := flag.Int("n", 1_000_000, "number of nodes for the teardown run")
	flag.Parse()
	if *n < 0 {
		log.Fatalf("-n must not be negative, got %d", *n)
	}

	l := linked_list.New[int]()
	v, ok := l.Pop()
	show("pop on empty list", v, ok)

	l.Push(1)
	l.Push(2)
	l.Push(3)
	v, ok = l.Peek()
	show("peek", v, ok)
	l.UpdateHead(func(head *int) { *head++ })
	v, ok = l.Peek()
	show("peek after incrementing head", v, ok)
	for range 4 {
		v, ok = l.Pop()
		show("pop", v, ok)
	}

	fmt.Println("\n--- into_iter ---")
	it := fresh().IntoIter()
	for range 4 {
		v, ok = it.Next()
		show("next", v, ok)
	}

	fmt.Println("\n--- iter ---")
	bi := fresh().Iter()
	for range 4 {
		v, ok = bi.Next()
		show("next", v, ok)
	}

	fmt.Println("\n--- iter_mut ---")
	mi := fresh().IterMut()
	for range 4 {
		p, ok := mi.Next()
		if ok {
			show("next", *p, ok)
		} else {
			show("next", 0, ok)
		}
	}

	fmt.Println("\n--- teardown ---")
	big := linked_list.New[int]()
	start := time.Now()
	for i := range *n {
		big.Push(i)
	}
	built := time.Since(start)
	start = time.Now()
	big.Drop()
	log.Printf("built %s nodes in %v, dropped in %v", humanize.Comma(int64(*n)), built, time.Since(start))
}
