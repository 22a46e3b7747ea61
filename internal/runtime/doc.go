// Package runtime provides the execution context for wgit commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// repository handle, logger, prompter, repository root and configuration.
package runtime
