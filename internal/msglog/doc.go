// Package msglog implements the bounded message log that every user-facing
// status line and diagnostic flows through.
//
// The log holds at most Cap() messages. Its capacity tracks the height of the
// terminal viewport and is recomputed by the renderer on every cycle, so it
// can shrink or grow between commands. When a new message arrives at
// capacity the oldest message is evicted first.
package msglog
