// Package model provides the data structures shared by the pipeline package and its options.
// It defines the step descriptors recorded by every lazy pipeline
// and the hooks an option can implement to observe a pipeline being built and forced.
package model
