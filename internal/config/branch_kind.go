package config

import "strings"

// BranchKind classifies a branch name under the workflow policy
type BranchKind int

const (
	// OtherBranch is neither protected nor created by the workflow
	OtherBranch BranchKind = iota
	// ProtectedBranch is the configured main or development branch
	ProtectedBranch
	// WorkflowBranch carries one of the workflow prefixes
	WorkflowBranch
)

// WorkflowBranchTypes lists the branch types `wgit branch start` offers, in order
var WorkflowBranchTypes = []string{"feature", "bugfix", "release", "hotfix"}

func (k BranchKind) String() string {
	switch k {
	case ProtectedBranch:
		return "protected"
	case WorkflowBranch:
		return "workflow"
	default:
		return "other"
	}
}

// IsProtected reports whether branchName is the main or development branch
func (c *WorkflowConfig) IsProtected(branchName string) bool {
	return branchName == c.MainBranch || branchName == c.DevBranch
}

// Classify returns the kind of branchName
func (c *WorkflowConfig) Classify(branchName string) BranchKind {
	if c.IsProtected(branchName) {
		return ProtectedBranch
	}
	for _, t := range WorkflowBranchTypes {
		if strings.HasPrefix(branchName, t+"/") {
			return WorkflowBranch
		}
	}
	return OtherBranch
}

// IsReleaseLike reports whether finishing branchName must also land on the main branch
func IsReleaseLike(branchName string) bool {
	return strings.HasPrefix(branchName, "release/") || strings.HasPrefix(branchName, "hotfix/")
}
