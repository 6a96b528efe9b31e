package main

import (
	"encoding/json"
	"fmt"
	"io"

	"eratos/internal/hanoi"
)

// renderPrimes writes a prime list as JSON or as text columns.
func renderPrimes(w io.Writer, primes []int) error {
	if cfg.Output.Format == "json" {
		return json.NewEncoder(w).Encode(primes)
	}

	for i, p := range primes {
		if i > 0 {
			if i%cfg.Output.Columns == 0 {
				fmt.Fprintln(w)
			} else {
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprint(w, p)
	}
	if len(primes) > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "(%d primes)\n", len(primes))
	return nil
}

func renderCount(w io.Writer, bound, count int) error {
	if cfg.Output.Format == "json" {
		return json.NewEncoder(w).Encode(struct {
			Bound int `json:"bound"`
			Count int `json:"count"`
		}{Bound: bound, Count: count})
	}
	fmt.Fprintf(w, "pi(%d) = %d\n", bound, count)
	return nil
}

// moveJSON widens hanoi.Move's byte peg labels into strings for output.
type moveJSON struct {
	Disk int    `json:"disk"`
	From string `json:"from"`
	To   string `json:"to"`
}

func renderMoves(w io.Writer, moves []hanoi.Move) error {
	if cfg.Output.Format == "json" {
		out := make([]moveJSON, len(moves))
		for i, m := range moves {
			out[i] = moveJSON{Disk: m.Disk, From: string(m.From), To: string(m.To)}
		}
		return json.NewEncoder(w).Encode(out)
	}

	for i, m := range moves {
		fmt.Fprintf(w, "%4d. %s\n", i+1, m)
	}
	fmt.Fprintf(w, "(%d moves)\n", len(moves))
	return nil
}
