// Package storage declares the persistence interfaces consumed by the
// planner domain service. Implementations live in subpackages.
package storage
