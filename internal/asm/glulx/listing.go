package glulx

import (
	"bufio"
	"fmt"
	"io"
)

// WriteListing writes a human-readable rendering of a to w, one item per line.
// The listing is meant for inspection; nothing parses it back.
func (a *Assembly) WriteListing(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, ".stack_size %d\n", a.StackSize)
	fmt.Fprintf(bw, ".start_func (%s)\n", a.StartFunc)
	if !a.DecodingTable.IsZero() {
		fmt.Fprintf(bw, ".initial_decoding_table (%s)\n", a.DecodingTable)
	}
	for _, item := range a.ROM {
		fmt.Fprintln(bw, item.listing())
	}
	fmt.Fprintln(bw, ".ram_items")
	for _, item := range a.RAM {
		fmt.Fprintln(bw, item.listing())
	}
	fmt.Fprintln(bw, ".zero_items")
	for _, item := range a.Zero {
		fmt.Fprintln(bw, item.listing())
	}
	return bw.Flush()
}

// Listing returns the listing line for a single item.
func Listing(item Item) string { return item.listing() }
