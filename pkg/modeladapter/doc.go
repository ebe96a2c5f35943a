// Package modeladapter provides the shared HTTP plumbing and error taxonomy
// for text-generation service clients.
package modeladapter
