// Package objects contains the data object model shared by the store, biz and server layers.
// To avoid circular dependencies, we put them here.
package objects
