package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"quill/frontend-go/pkg/driver"
)

func runDeps(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "quill deps requires a subcommand (install)")
		return 1
	}
	switch args[0] {
	case "install":
		if len(args) > 1 {
			fmt.Fprintf(os.Stderr, "quill deps install does not take arguments (received %s)\n", strings.Join(args[1:], " "))
			return 1
		}
		return runDepsInstall()
	default:
		fmt.Fprintf(os.Stderr, "unknown deps subcommand %q\n", args[0])
		return 1
	}
}

func runDepsInstall() int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to determine working directory: %v\n", err)
		return 1
	}
	manifestPath, err := driver.FindManifest(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to locate package.yml: %v\n", err)
		return 1
	}
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read manifest: %v\n", err)
		return 1
	}
	cacheDir, err := driver.CacheDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve QUILL_HOME: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stdout, "Manifest: %s\n", manifest.Path)
	fmt.Fprintf(os.Stdout, "Cache directory: %s\n", cacheDir)

	// Version-only dependencies cannot be fetched; they resolve only
	// when a checkout already sits in the cache.
	cachedRoots := driver.SearchRoots(manifest, cacheDir)

	failed := false
	install := func(group string, deps map[string]*driver.DependencySpec) {
		for _, name := range sortedDependencyNames(deps) {
			if err := installDependency(manifest, cacheDir, cachedRoots, name, deps[name]); err != nil {
				fmt.Fprintf(os.Stderr, "%s.%s: %v\n", group, name, err)
				failed = true
			}
		}
	}
	install("dependencies", manifest.Dependencies)
	install("dev_dependencies", manifest.DevDependencies)

	if failed {
		return 1
	}
	fmt.Fprintln(os.Stdout, "Dependencies installed.")
	return 0
}

func sortedDependencyNames(deps map[string]*driver.DependencySpec) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func installDependency(manifest *driver.Manifest, cacheDir string, cachedRoots map[string]string, name string, dep *driver.DependencySpec) error {
	if dep == nil {
		return nil
	}
	switch {
	case dep.Path != "":
		dir := dep.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(manifest.Dir(), dir)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("path dependency directory %s not found", dir)
		}
		fmt.Fprintf(os.Stdout, "Using %s from %s\n", name, dir)
		return nil
	case dep.Git != "":
		version, commit, checksum, err := fetchGitDependency(cacheDir, name, dep)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Installed %s %s (%s, sha256:%s)\n", name, version, shortCommit(commit), shortCommit(checksum))
		return nil
	default:
		if dir := cachedRoots[driver.SanitizeName(name)]; dir != "" {
			fmt.Fprintf(os.Stdout, "Using cached %s from %s\n", name, dir)
			return nil
		}
		return fmt.Errorf("no source to fetch %q from; place a checkout under %s", name, driver.DependencyDir(cacheDir, name))
	}
}

func shortCommit(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
