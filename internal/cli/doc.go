// Package cli renders a histogram sweep on a terminal: the execution banner,
// a spinner and timing line per run, and the final summary table.
//
// # Naming Conventions
//
//   - Print* and Display* functions write formatted output to an [io.Writer].
//     Examples: [PrintExecutionConfig], [DisplayMemoryStats].
//
//   - Functions without a prefix return data and perform no I/O.
//     Examples: [SummaryRows], [CPUFeatures].
package cli
