// Package doctor runs every precondition of a resolution pass without
// stopping at the first failure, and renders the results for a terminal.
package doctor
