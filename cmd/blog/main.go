package main

import (
	"fmt"
	"log"
	"os"

	site "github.com/grahamsutton/grahamsutton.dev"
	"github.com/grahamsutton/grahamsutton.dev/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "build":
		app, cleanup := newApp()
		defer cleanup()
		if err := app.Build(); err != nil {
			log.Fatal(err)
		}
	case "serve":
		app, cleanup := newApp()
		defer cleanup()
		if err := app.Serve(); err != nil {
			log.Fatal(err)
		}
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: blog new <post title>")
			os.Exit(1)
		}
		if err := runNew(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("blog %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// newApp loads configuration and wires the content source. Posts come
// from the markdown content dir unless SITE_DB points at a SQLite
// database, in which case the site builds straight from it.
func newApp() (*site.App, func()) {
	cfg, err := site.LoadConfig(site.EnvOr("SITE_CONFIG", "site.yml"))
	if err != nil {
		log.Fatal(err)
	}

	if dbPath := os.Getenv("SITE_DB"); dbPath != "" {
		store, err := site.NewStore(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		return site.New(cfg, views.Default(), site.WithSource(store)), func() { store.Close() }
	}
	return site.New(cfg, views.Default()), func() {}
}

func printUsage() {
	fmt.Println(`blog - static site generator for grahamsutton.dev

Usage:
  blog <command> [arguments]

Commands:
  build         Generate the site into the output dir
  serve         Build, serve locally, and rebuild on changes
  new <title>   Create a new post markdown file
  version       Print the version
  help          Show this help message

Configuration is read from site.yml (override with SITE_CONFIG) and
SITE_* environment variables. Set SITE_DB to build from a SQLite post
database instead of the markdown content dir.`)
}
