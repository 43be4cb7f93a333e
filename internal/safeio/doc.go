// Package safeio writes files atomically so an interrupted run never
// leaves a half-written output behind.
package safeio
