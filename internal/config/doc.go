// Package config manages wgit configuration.
//
// It handles:
//   - The per-repository workflow configuration stored in .git/wgit.json
//   - Classification of branch names into protected and workflow branches
package config
