// Package utils provides small helpers shared across packages:
// branch name sanitization and slice lookups.
package utils
