package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shipdocs/tank-monitoring-system/internal/app"
	"github.com/shipdocs/tank-monitoring-system/internal/config"
)

func main() {
	// Flags
	debug := flag.Bool("debug", false, "enable debug logging to ./icongen-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via ICONGEN_STDIO_LOG")
	flag.Parse()

	// Environment settings fill in for flags that were not given.
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Println("env config error:", err)
	}
	debugOn := *debug || cfg.Debug
	logPath := *stdioLog
	if logPath == "" {
		logPath = cfg.StdioLog
	}

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so failures in unattended builds are diagnosable.
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if debugOn {
		f, err := os.OpenFile("./icongen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a := app.New()
	a.Logger = logger

	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "icongen:", err)
		os.Exit(1)
	}
	fmt.Println("Icon created:", a.OutPath)
}
