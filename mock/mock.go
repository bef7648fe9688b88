// Package mock provides function-field mock implementations of the skillpack
// domain interfaces for use in tests.
package mock
