// Package fmath selects the numeric support routines for the algebra
// at build time. Hosted builds and freestanding builds with a runtime
// delegate to the standard library; baremetal builds link the
// allocation-free software implementations instead. Every backend has
// identical semantics, only the linked routines differ.
package fmath
