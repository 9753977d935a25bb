package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// sourceDirCandidates are directories checked, in order, for an existing
// site source.
var sourceDirCandidates = []string{"docs", "site", "content", "."}

// detectSourceDir returns the first candidate directory holding index.md.
func detectSourceDir() string {
	for _, dir := range sourceDirCandidates {
		if _, err := os.Stat(filepath.Join(dir, "index.md")); err == nil {
			return dir
		}
	}
	return "docs"
}

// RunWizard runs an interactive configuration wizard, saves the result
// to path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docsite! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	src := detectSourceDir()
	if _, err := os.Stat(filepath.Join(src, "index.md")); err == nil {
		fmt.Printf("Found site source in %s\n\n", src)
	}

	// 1. Project name.
	namePrompt := promptui.Prompt{
		Label:   "Project name",
		Default: filepath.Base(mustGetwd()),
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("project name: %w", err)
	}
	cfg.ProjectName = name

	// 2. Source directory.
	sourcePrompt := promptui.Prompt{
		Label:   "Source directory (markdown)",
		Default: src,
	}
	if cfg.SourceDir, err = sourcePrompt.Run(); err != nil {
		return nil, fmt.Errorf("source dir: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Base URL.
	urlPrompt := promptui.Prompt{
		Label:   "Base URL the site is served from",
		Default: cfg.BaseURL,
		Validate: func(s string) error {
			candidate := *cfg
			candidate.BaseURL = s
			return candidate.Validate()
		},
	}
	if cfg.BaseURL, err = urlPrompt.Run(); err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	// 5. Default theme.
	themePrompt := promptui.Select{
		Label: "Default theme",
		Items: []string{"light", "dark"},
	}
	if _, cfg.DefaultTheme, err = themePrompt.Run(); err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	// 6. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "docs"
	}
	return wd
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
