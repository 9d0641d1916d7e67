// SPDX-License-Identifier: MIT

// Package queue provides a bounded circular FIFO (Ring) and a
// min-priority queue (Priority) that breaks ties first-in first-out.
//
// Ring replaces the fixed-size array queues with front/rear indices:
// Enqueue on a full ring returns ErrFull, Dequeue on an empty ring returns
// ErrEmpty, and Rotate moves the front element to the back (round-robin
// scheduling).
//
// Priority serves the lowest priority number first; among equal
// priorities the earliest pushed element wins.
//
// Neither type is safe for concurrent mutation.
package queue
