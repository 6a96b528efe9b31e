// Package hanoi generates optimal Tower of Hanoi move sequences.
//
// The recurrence hanoi(n) = hanoi(n-1); move n; hanoi(n-1) is realized with
// an explicit frame stack rather than call-stack recursion, so generating
// the full sequence never risks stack growth proportional to n.
package hanoi

import (
	"errors"
	"fmt"
)

// MaxDisks bounds move-list generation. The optimal sequence has 2^n - 1
// moves, so anything past this would be a gigabyte-scale allocation.
const MaxDisks = 30

// ErrInvalidPuzzle is returned for negative disk counts, oversized puzzles,
// and peg sets that are not three distinct labels.
var ErrInvalidPuzzle = errors.New("hanoi: invalid puzzle")

// Move transfers one disk between pegs. Disks are numbered 1 (smallest)
// through n; pegs carry single-byte labels such as 'A', 'B', 'C'.
type Move struct {
	Disk int
	From byte
	To   byte
}

func (m Move) String() string {
	return fmt.Sprintf("disk %d: %c -> %c", m.Disk, m.From, m.To)
}

// MinMoves returns the length of the optimal solution for n disks, 2^n - 1.
func MinMoves(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d disks", ErrInvalidPuzzle, n)
	}
	if n > 62 {
		return 0, fmt.Errorf("%w: 2^%d - 1 moves overflows", ErrInvalidPuzzle, n)
	}
	return 1<<uint(n) - 1, nil
}

// frame is one deferred step of the unrolled recurrence. emit frames append
// a move; expand frames push their children.
type frame struct {
	n             int
	from, via, to byte
	emit          bool
}

// Moves returns the optimal sequence moving n disks from peg from to peg to
// using peg via. The sequence is empty for n == 0.
func Moves(n int, from, via, to byte) ([]Move, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d disks", ErrInvalidPuzzle, n)
	}
	if n > MaxDisks {
		return nil, fmt.Errorf("%w: %d disks exceeds the %d-disk limit", ErrInvalidPuzzle, n, MaxDisks)
	}
	if from == via || via == to || from == to {
		return nil, fmt.Errorf("%w: pegs %c, %c, %c are not distinct", ErrInvalidPuzzle, from, via, to)
	}

	total := 1<<uint(n) - 1
	moves := make([]Move, 0, total)
	stack := make([]frame, 0, 2*n+1)
	stack = append(stack, frame{n: n, from: from, via: via, to: to})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.emit {
			moves = append(moves, Move{Disk: f.n, From: f.from, To: f.to})
			continue
		}
		if f.n == 0 {
			continue
		}
		// Pushed in reverse of execution order: clear the n-1 tower onto
		// via, emit disk n, then rebuild the n-1 tower onto to.
		stack = append(stack,
			frame{n: f.n - 1, from: f.via, via: f.from, to: f.to},
			frame{n: f.n, from: f.from, to: f.to, emit: true},
			frame{n: f.n - 1, from: f.from, via: f.to, to: f.via},
		)
	}
	return moves, nil
}
