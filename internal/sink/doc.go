// Package sink abstracts the destination of formatted output: a byte
// stream, a raw file descriptor, a caller-supplied buffer, or a buffer
// allocated here and handed to the caller. One operation, Emit, writes
// a single byte; the sink keeps the running character count the driver
// reports and %n observes.
//
// The caller-buffer sink never fails: once the cap is reached (a capped
// buffer reserves one byte for the terminator; a NoLimit buffer is
// bounded by its length alone) further writes only count.
// Counting is exactly what snprintf's size-0 idiom needs, so a nil
// buffer with limit 0 is valid.
package sink
