// SPDX-License-Identifier: EPL-2.0

// Command padcore runs the sampler core as a line-oriented JSON process:
// command envelopes in on stdin, event envelopes out on stdout, diagnostics
// on stderr.
package main

func main() {
	Execute()
}
