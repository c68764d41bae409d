package app

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/shipdocs/tank-monitoring-system/internal/icon"
	"github.com/shipdocs/tank-monitoring-system/internal/render"
)

// OutputPath is where the icon lands, relative to the working directory.
// The Electron build expects it at exactly this path.
const OutputPath = "electron/icon.png"

type App struct {
	OutPath string
	Logger  Logger
}

func New() *App {
	return &App{OutPath: OutputPath, Logger: NoopLogger{}}
}

// Run renders the icon and writes it as a PNG to app.OutPath. The parent
// directory must already exist; Run does not create it.
func (app *App) Run() error {
	canvas := render.NewRaster(icon.Size, icon.Size)
	icon.Compose(canvas)
	app.Logger.Infof("app", "rendered %dx%d icon", icon.Size, icon.Size)

	if err := app.writePNG(canvas.Image()); err != nil {
		app.Logger.Errorf("app", "write failed: %v", err)
		return err
	}
	app.Logger.Infof("app", "wrote %s", app.OutPath)
	return nil
}

func (app *App) writePNG(img image.Image) error {
	f, err := os.Create(app.OutPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", app.OutPath, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", app.OutPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", app.OutPath, err)
	}
	return nil
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
