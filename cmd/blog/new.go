package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	site "github.com/grahamsutton/grahamsutton.dev"
)

const postTemplate = `---
title: %q
date: %q
tags: []
summary: ""
draft: true
---

Write your post here.
`

// runNew scaffolds a draft markdown post under the content dir. The
// filename (and therefore the slug) is derived from the title.
func runNew(titleArgs []string) error {
	cfg, err := site.LoadConfig(site.EnvOr("SITE_CONFIG", "site.yml"))
	if err != nil {
		return err
	}

	title := strings.Join(titleArgs, " ")
	slug := site.Slugify(title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", title)
	}

	path := filepath.Join(cfg.ContentDir, slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		return err
	}
	content := fmt.Sprintf(postTemplate, title, time.Now().Format("2006-01-02"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
