// Package trace defines the append-only Sink every primtrace component
// reports its decisions to, together with the stock implementations.
//
// Contract:
//
//   - Every line passed to Append is preserved in call order.
//   - Lines are never mutated, reordered, or dropped.
//   - Append carries no error channel: a Sink that can fail (Writer)
//     retains its first failure and exposes it via Err().
//
// Implementations:
//
//	– Buffer  — in-memory recorder; Lines() returns a defensive copy.
//	– Writer  — writes each line plus '\n' to an io.Writer.
//	– Tee     — fans every line out to several sinks, in order.
//	– Discard — drops everything; the stand-in for a nil sink.
//
// Sinks are written by a single logical thread of control; none of the
// implementations lock.
package trace
