package main

import (
	"fmt"
	"log"

	"github.com/hupe1980/dynbitset"
)

func main() {
	b := dynbitset.New(12)

	fmt.Println("--- Set ---")
	for _, pos := range []int{0, 3, 7, 11} {
		if err := b.Set(pos, true); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Len:", b.Len())
	fmt.Println("Count:", b.Count())
	fmt.Println("Bits:", b)

	fmt.Println("--- Resize ---")
	b.Resize(24)
	fmt.Println("Len:", b.Len())
	fmt.Println("Count:", b.Count())
	fmt.Println("Bits:", b)

	fmt.Println("--- Clear one ---")
	if err := b.Set(3, false); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Count:", b.Count())
	fmt.Println("Bits:", b)

	fmt.Println("--- Out of range ---")
	if err := b.Set(1000, true); err != nil {
		fmt.Println("Error:", err)
	}

	fmt.Println("--- Reset ---")
	b.Reset()
	fmt.Println("Count:", b.Count())
	fmt.Println("Bits:", b)
}
