package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/segview/client"
	"github.com/andareed/segview/config"
	"github.com/andareed/segview/logging"
	"github.com/andareed/segview/notes"
	"github.com/andareed/segview/server"
)

const Version = "0.3.0"

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (default: "+config.DefaultPath()+")")
	sampleConfig := flag.Bool("sample-config", false, "write a sample config and exit")
	demo := flag.Bool("demo", false, "serve a built-in demo backend and browse it")
	demoSegments := flag.Int("demo-segments", 60, "number of segments the demo backend serves")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}
	if *sampleConfig {
		dst := *configPath
		if dst == "" {
			dst = config.DefaultPath()
		}
		if err := config.WriteSample(dst); err != nil {
			log.Fatalf("Failed to write sample config: %v", err)
		}
		fmt.Println("Wrote sample config to", dst)
		os.Exit(0)
	}

	// Anything below here should NOT run if --version was provided.
	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("segview: Started")

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config %q: %v", path, err)
	}

	// Positional argument overrides the configured backend.
	if args := flag.Args(); len(args) > 0 {
		cfg.ServerURL = args[0]
	}

	if *demo {
		url, err := server.New(*demoSegments, len(cfg.CustomPlots)).Serve()
		if err != nil {
			log.Fatalf("failed to start demo backend: %v", err)
		}
		logging.Infof("demo backend listening on %s", url)
		cfg.ServerURL = url
	}

	if err := cfg.Validate(); err != nil {
		fmt.Println("Usage: segview [--debug debug.log] [--demo] [server-url]")
		log.Fatalf("config: %v", err)
	}

	session, err := notes.Open(cfg.SessionPath)
	if err != nil {
		log.Fatalf("failed to open session store %q: %v", cfg.SessionPath, err)
	}
	defer session.Close()

	api := client.New(cfg.ServerURL, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	m := newModel(cfg, api, session)

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}
