// Package types defines the Auralis entity types, their status
// enumerations, the shared configuration struct, and the standard errors
// returned by the store repositories.
package types
