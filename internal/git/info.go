// Package git reports the state of the repository the tool runs in.
// Development builds use it to identify the exact sources behind a binary.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// RepoInfo describes the current checkout.
type RepoInfo struct {
	// CommitHash is the current HEAD commit hash
	CommitHash string
	// Branch is the current branch name
	Branch string
	// IsDirty indicates if the working tree has uncommitted changes
	IsDirty bool
}

// GetRepoInfo inspects the Git repository containing path, seeking upwards
// for the .git directory if necessary.
func GetRepoInfo(path string) (*RepoInfo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to find a Git repository that path %q belongs to: %w", path, err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference for repository %q: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree for repository %q: %w", path, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status for repository %q: %w", path, err)
	}

	return &RepoInfo{
		CommitHash: headRef.Hash().String(),
		Branch:     headRef.Name().Short(),
		IsDirty:    !status.IsClean(),
	}, nil
}
