package site

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Serve builds the site, then serves the output directory over HTTP and
// rebuilds whenever the content or static directories change. It blocks
// until the server stops.
func (a *App) Serve() error {
	if err := a.Build(); err != nil {
		return err
	}

	stop, err := a.watch()
	if err != nil {
		return err
	}
	defer stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			slog.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/public/")
		},
	}))
	// Previews should never be cached; stale pages defeat watch mode.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", "no-store")
			return next(c)
		}
	})

	e.Static("/", a.Config.OutputDir)
	e.HTTPErrorHandler = a.notFoundHandler(e)

	slog.Info("preview server listening", "addr", a.Config.Addr)
	if err := e.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// notFoundHandler serves the generated 404.html for missing paths.
func (a *App) notFoundHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
			page, readErr := os.ReadFile(a.Config.OutputDir + "/404.html")
			if readErr == nil {
				_ = c.HTMLBlob(http.StatusNotFound, page)
				return
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// watch rebuilds the site when content or static files change. Events are
// coalesced over a short window so one save does not trigger a rebuild
// per write syscall. The returned func stops the watcher.
func (a *App) watch() (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range []string{a.Config.ContentDir, a.Config.StaticDir} {
		if _, statErr := os.Stat(dir); statErr != nil {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		rebuild := make(chan struct{}, 1)
		for {
			select {
			case <-done:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(200*time.Millisecond, func() {
					select {
					case rebuild <- struct{}{}:
					default:
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("watch error", "err", err)
			case <-rebuild:
				if err := a.Build(); err != nil {
					slog.Error("rebuild failed", "err", err)
				}
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
