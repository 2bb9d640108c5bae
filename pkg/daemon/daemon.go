// Package daemon hosts the bar modules: it feeds them file-change
// notifications, re-renders on broadcasts, and serves the local API.
package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/beambar/beambar/pkg/config"
	"github.com/beambar/beambar/pkg/events"
	"github.com/beambar/beambar/pkg/modules"
	"github.com/beambar/beambar/pkg/modules/battery"
	"github.com/beambar/beambar/pkg/watcher"
)

// DefaultSocketPath is the local API endpoint.
const DefaultSocketPath = "/var/run/beambar.sock"

type Daemon struct {
	conf *config.Store
	hub  *events.Hub

	mods    []modules.Module
	watched []modules.Watched

	mu         sync.Mutex
	lastOutput string
}

func newDaemon(conf *config.Store) *Daemon {
	d := &Daemon{
		conf: conf,
		hub:  events.NewHub(),
	}

	// Battery is the only module for now; the registry is already plural
	// so further modules slot in here.
	bat := battery.New("battery", conf, d.hub)
	d.mods = append(d.mods, bat)
	d.watched = append(d.watched, bat)

	return d
}

// Run starts the daemon and blocks until SIGINT or SIGTERM.
func Run(configPath, socketPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	d := newDaemon(conf)
	router := d.setupRoutes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, m := range d.mods {
		m.Start()
	}

	// Subscribe the renderer before anything can broadcast; the hub
	// drops events that have no subscribers.
	d.startRender()

	// Initial sample so the first render does not show zero state.
	d.sampleAll()

	w, err := watcher.New()
	if err != nil {
		return err
	}
	defer w.Close()
	for _, m := range d.watched {
		for _, path := range m.WatchPaths() {
			if err := w.Register(path); err != nil {
				// Polling still covers the module; keep going.
				logrus.Warnf("cannot watch %s: %v", path, err)
			}
		}
	}
	go w.Run(ctx)
	go d.dispatchLoop(w.Events())

	go d.pollLoop(ctx)

	// SIGUSR1 forces a redraw, SIGHUP re-samples everything.
	sigRedraw := make(chan os.Signal, 1)
	signal.Notify(sigRedraw, syscall.SIGUSR1, syscall.SIGHUP)
	go d.signalLoop(ctx, sigRedraw)

	srv := &http.Server{Handler: router}

	// Remove a stale socket from a previous run before listening.
	_ = os.Remove(socketPath)
	l, err := net.Listen("unix", socketPath)
	if err != nil {
		return err
	}

	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal %s, shutting down", sig)

	for _, m := range d.mods {
		m.Stop()
	}
	signal.Stop(sigRedraw)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http server shutdown: %v", err)
	}
	_ = os.Remove(socketPath)

	return nil
}

// sampleAll re-samples every watched module and broadcasts for each one
// that published a new snapshot.
func (d *Daemon) sampleAll() {
	for _, m := range d.watched {
		if m.OnFileEvent("") {
			d.hub.Publish(events.Redraw, m.Name())
		}
	}
}

// signalLoop turns SIGUSR1 into a forced redraw and SIGHUP into a full
// re-sample. It winds down with the rest of the daemon.
func (d *Daemon) signalLoop(ctx context.Context, sigc <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigc:
			if !ok {
				return
			}
			if sig == syscall.SIGHUP {
				for _, m := range d.watched {
					m.OnFileEvent("")
				}
			}
			d.hub.Publish(events.Redraw, "signal")
		}
	}
}

// dispatchLoop routes file events to the module watching that path.
func (d *Daemon) dispatchLoop(evs <-chan watcher.Event) {
	for ev := range evs {
		for _, m := range d.watched {
			if !watchesPath(m, ev.Path) {
				continue
			}
			if m.OnFileEvent(ev.Path) {
				d.hub.Publish(events.Redraw, m.Name())
			}
		}
	}
}

// pollLoop re-samples on a fixed cadence. sysfs attributes are generated
// on read and rarely produce inotify traffic, so without this the bar
// would only move when something else touches the files.
func (d *Daemon) pollLoop(ctx context.Context) {
	interval := time.Duration(d.conf.GetInt("bar", "poll_interval", 30)) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.sampleAll()
		}
	}
}

func watchesPath(m modules.Watched, path string) bool {
	for _, p := range m.WatchPaths() {
		if p == path {
			return true
		}
	}
	return false
}

func (d *Daemon) setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/version", d.getVersion)
	router.GET("/output", d.getOutput)
	router.GET("/modules", d.getModules)
	router.GET("/modules/:name/snapshot", d.getSnapshot)
	router.POST("/modules/:name/refresh", d.postRefresh)
	router.GET("/battery-info", d.getBatteryInfo)

	return router
}
