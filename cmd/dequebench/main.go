// Command dequebench drives a chunked deque through a configurable
// sequence of push/pop operations and reports timing, so changes to the
// growth thresholds in the deque package can be sanity-checked by hand
// without a full benchmark harness.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/shell769324/chunkdeque"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of operations to run")
	seed := flag.Int64("seed", 1, "random seed for the operation mix")
	shrink := flag.Bool("shrink", false, "call ShrinkToFit after the run")
	flag.Parse()

	if *n < 0 {
		log.Fatalf("dequebench: -n must not be negative")
	}

	r := rand.New(rand.NewSource(*seed))
	d := deque.New[int]()

	start := time.Now()
	for i := 0; i < *n; i++ {
		switch r.Intn(4) {
		case 0:
			d.PushBack(i)
		case 1:
			d.PushFront(i)
		case 2:
			if !d.Empty() {
				d.PopBack()
			}
		case 3:
			if !d.Empty() {
				d.PopFront()
			}
		}
	}
	elapsed := time.Since(start)

	if *shrink {
		before := d.Len()
		d.ShrinkToFit()
		if d.Len() != before {
			log.Fatalf("dequebench: ShrinkToFit changed length from %d to %d", before, d.Len())
		}
	}

	fmt.Printf("ops=%d final_len=%d elapsed=%s ops/sec=%.0f\n",
		*n, d.Len(), elapsed, float64(*n)/elapsed.Seconds())
}
