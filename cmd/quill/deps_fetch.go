package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"quill/frontend-go/pkg/driver"
)

// fetchGitDependency ensures the cache holds a checkout of the
// dependency's pinned revision. It returns the version segment the
// checkout lives under, the resolved commit, and a content checksum.
func fetchGitDependency(cacheDir, name string, dep *driver.DependencySpec) (string, string, string, error) {
	url := strings.TrimSpace(dep.Git)
	if url == "" {
		return "", "", "", fmt.Errorf("git URL required")
	}
	depDir := driver.DependencyDir(cacheDir, name)
	if err := os.MkdirAll(depDir, 0o755); err != nil {
		return "", "", "", err
	}

	revision, descriptor, err := gitRevision(dep)
	if err != nil {
		return "", "", "", err
	}

	if rev := strings.TrimSpace(dep.Rev); rev != "" {
		existing := driver.CheckoutDir(cacheDir, name, rev)
		if _, statErr := os.Stat(existing); statErr == nil {
			checksum, sumErr := dirChecksum(existing)
			if sumErr != nil {
				return "", "", "", sumErr
			}
			return rev, rev, checksum, nil
		}
	}

	tmpDir, err := os.MkdirTemp(depDir, "git-fetch-*")
	if err != nil {
		return "", "", "", err
	}
	// PlainClone insists on creating the directory itself.
	if err := os.RemoveAll(tmpDir); err != nil {
		return "", "", "", err
	}

	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{
		URL:               url,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
	})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", "", fmt.Errorf("git clone %s: %w", url, err)
	}

	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", "", fmt.Errorf("resolve revision %s: %w", revision, err)
	}

	version := pinnedVersion(descriptor, hash.String())
	targetDir := driver.CheckoutDir(cacheDir, name, version)
	if _, statErr := os.Stat(targetDir); statErr == nil {
		_ = os.RemoveAll(tmpDir)
		checksum, sumErr := dirChecksum(targetDir)
		if sumErr != nil {
			return "", "", "", sumErr
		}
		return version, hash.String(), checksum, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", "", err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{
		Hash:  *hash,
		Force: true,
	}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", "", fmt.Errorf("git checkout %s: %w", revision, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", "", err
	}
	checksum, err := dirChecksum(targetDir)
	if err != nil {
		return "", "", "", err
	}
	return version, hash.String(), checksum, nil
}

func gitRevision(dep *driver.DependencySpec) (plumbing.Revision, string, error) {
	if rev := strings.TrimSpace(dep.Rev); rev != "" {
		return plumbing.Revision(rev), rev, nil
	}
	if tag := strings.TrimSpace(dep.Tag); tag != "" {
		return plumbing.Revision("refs/tags/" + tag), tag, nil
	}
	if branch := strings.TrimSpace(dep.Branch); branch != "" {
		return plumbing.Revision("refs/heads/" + branch), branch, nil
	}
	return "", "", fmt.Errorf("git dependencies require rev, tag, or branch")
}

// pinnedVersion names the checkout directory: the commit alone for a
// rev pin, descriptor@commit for tags and branches so the descriptor
// stays readable in the cache.
func pinnedVersion(descriptor, commit string) string {
	commit = strings.TrimSpace(commit)
	descriptor = strings.TrimSpace(descriptor)
	if commit == "" {
		return descriptor
	}
	if descriptor == "" || descriptor == commit {
		return commit
	}
	return fmt.Sprintf("%s@%s", descriptor, commit)
}

// dirChecksum hashes a checkout's files by relative path and content.
// The .git directory is excluded so the sum tracks the sources alone.
func dirChecksum(path string) (string, error) {
	h := sha256.New()
	err := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		h.Write([]byte(filepath.ToSlash(rel)))
		h.Write(data)
		return nil
	})
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
