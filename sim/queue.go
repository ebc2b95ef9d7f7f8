// Implements the ReadyQueue, which holds the slots waiting for the CPU under
// round-robin. Slots are enqueued on admission and requeued after a slice.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of process slots.
type ReadyQueue struct {
	queue []int
}

// Enqueue adds a slot to the back of the queue.
func (rq *ReadyQueue) Enqueue(slot int) {
	rq.queue = append(rq.queue, slot)
}

// Dequeue removes and returns the slot at the front of the queue.
// Returns false if the queue is empty.
func (rq *ReadyQueue) Dequeue() (int, bool) {
	if len(rq.queue) == 0 {
		return noSlot, false
	}
	slot := rq.queue[0]
	rq.queue = rq.queue[1:]
	return slot, true
}

// Len returns the number of queued slots.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Items returns the queue contents front to back.
// The returned slice is the queue's internal storage and MUST NOT be modified.
func (rq *ReadyQueue) Items() []int {
	return rq.queue
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, slot := range rq.queue {
		sb.WriteString(fmt.Sprint(slot))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
