// Package types defines the core types and interfaces used throughout manage.
// This includes the Package and Host data structures, the FS filesystem
// interface, and the result types produced by processing and linking.
package types
