package bitmap_test

import (
	"fmt"
	"log"

	"github.com/jacoolee/bitmap"
)

// ExampleBitVector demonstrates growth and the boolean operations.
func ExampleBitVector() {
	a := bitmap.NewBitVector(bitmap.WithInitialBits(0))
	a.TurnOn(1).TurnOn(100)

	b := bitmap.NewBitVector(bitmap.WithInitialBits(0))
	b.TurnOn(2)

	a.Union(b)
	fmt.Println(a.IsTurnedOn(1), a.IsTurnedOn(2), a.IsTurnedOn(100))
	fmt.Println(a.BitLength())
	// Output:
	// true true true
	// 192
}

// ExampleCompoundBitmap demonstrates indexing and querying strings.
func ExampleCompoundBitmap() {
	cb, err := bitmap.New(bitmap.WithGroupWidth(2))
	if err != nil {
		log.Fatal(err)
	}

	if err := cb.TurnOn("ab"); err != nil {
		log.Fatal(err)
	}

	for _, s := range []string{"ab", "ba"} {
		ok, err := cb.IsTurnedOn(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %v\n", s, ok)
	}
	fmt.Println("bitmaps:", cb.BitmapCount())
	// Output:
	// ab: true
	// ba: false
	// bitmaps: 1
}

// ExampleApproxMemSize estimates the footprint of 2-character groups for
// 4-character strings.
func ExampleApproxMemSize() {
	size, err := bitmap.ApproxMemSize(2, 4, bitmap.KB)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.2f KB\n", size)
	// Output: 2.44 KB
}
