package site

import "embed"

// EmbeddedAssets contains default assets shipped with the generator,
// used when the user's static dir does not provide its own.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
