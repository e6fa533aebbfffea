// Package model provides the data structures shared by the report driver and its run options.
// It defines the page descriptors handed to every option and the option contract itself.
package model
