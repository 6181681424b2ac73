package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	curtain "github.com/curtainapp/curtain/src"
	"github.com/curtainapp/curtain/src/tui"
	"github.com/curtainapp/curtain/src/util"
)

var version = "0.1"

const usage = `usage: curtain-demo [options]

  Movement control demo: move the coordinates with W/A/S/D (or the arrow
  keys with --keypad) and leave with ESC.

  Options
    --fps=FPS        Target update rate (default: 30)
    --keypad         Report arrow keys to the update hook
    --gravity        Threaded variant: the update loop runs on a worker
                     while the main goroutine applies gravity once a second
    --log=FILE       Append a JSON debug log to FILE
    --version        Display version information and exit
    -h, --help       Display this message and exit
`

type demoOptions struct {
	fps     int
	keypad  bool
	gravity bool
	logFile string
}

func errorExit(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}

func parseOptions(args []string) demoOptions {
	opts := demoOptions{fps: 30}
	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			fmt.Print(usage)
			os.Exit(0)
		case arg == "--version":
			fmt.Println("curtain-demo", version)
			os.Exit(0)
		case arg == "--keypad":
			opts.keypad = true
		case arg == "--gravity":
			opts.gravity = true
		case strings.HasPrefix(arg, "--fps="):
			fps, err := strconv.Atoi(arg[len("--fps="):])
			if err != nil {
				errorExit("invalid fps: " + arg)
			}
			opts.fps = fps
		case strings.HasPrefix(arg, "--log="):
			opts.logFile = arg[len("--log="):]
		default:
			errorExit("unknown option: " + arg + "\n" + usage)
		}
	}
	return opts
}

// mover holds the demo state. The mutex matters only in gravity mode,
// where the main goroutine mutates y while the worker repaints.
type mover struct {
	mu sync.Mutex
	x  int
	y  int
}

func (m *mover) onEnter(screen *curtain.Screen) error {
	width, _ := screen.Size()
	title := "Movement Control"
	screen.DrawText(0, util.Max(0, (width-util.StringWidth(title))/2), title,
		curtain.Bold(), curtain.Underline())

	screen.DrawText(3, 2, "X coordinate:")
	screen.DrawText(4, 2, "Y coordinate:")

	screen.DrawText(7, 2, "Keyboard Controls:", curtain.Bold())
	screen.DrawText(8, 4, "W/S - Move up/down")
	screen.DrawText(9, 4, "A/D - Move left/right")
	screen.DrawText(10, 4, "ESC - Exit app", curtain.Bold())
	return nil
}

func (m *mover) onUpdate(requestExit func()) func(*curtain.Screen, tui.Event) error {
	return func(screen *curtain.Screen, key tui.Event) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		switch key.Type {
		case tui.Esc:
			requestExit()
			return nil
		case tui.Rune:
			switch key.Char {
			case 'w', 'W':
				m.y--
			case 's', 'S':
				m.y++
			case 'a', 'A':
				m.x--
			case 'd', 'D':
				m.x++
			}
		case tui.Up:
			m.y--
		case tui.Down:
			m.y++
		case tui.Left:
			m.x--
		case tui.Right:
			m.x++
		}

		width, height := screen.Size()
		m.x = util.Constrain(m.x, 0, width-1)
		m.y = util.Constrain(m.y, 0, height-1)
		screen.DrawText(3, 16, fmt.Sprintf("%12d", m.x))
		screen.DrawText(4, 16, fmt.Sprintf("%12d", m.y))
		return nil
	}
}

func demoLogger(path string) *slog.Logger {
	if path == "" {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		errorExit("cannot open log file: " + err.Error())
	}
	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func main() {
	opts := parseOptions(os.Args[1:])
	options := curtain.Options{
		FPS:    opts.fps,
		Keypad: opts.keypad,
		Logger: demoLogger(opts.logFile),
	}

	m := &mover{}
	var err error
	if opts.gravity {
		err = runGravity(options, m)
	} else {
		err = runPlain(options, m)
	}
	if err != nil {
		errorExit(err.Error())
	}
}

func runPlain(options curtain.Options, m *mover) error {
	var app *curtain.App
	hooks := curtain.Hooks{
		OnEnter:  m.onEnter,
		OnUpdate: m.onUpdate(func() { app.RequestExit() }),
	}
	app, err := curtain.NewApp(options, hooks)
	if err != nil {
		return err
	}
	return app.Run()
}

func runGravity(options curtain.Options, m *mover) error {
	var app *curtain.ThreadedApp
	hooks := curtain.Hooks{
		OnEnter:  m.onEnter,
		OnUpdate: m.onUpdate(func() { app.RequestExit() }),
	}
	app, err := curtain.NewThreadedApp(options, hooks)
	if err != nil {
		return err
	}
	if err := app.Enter(); err != nil {
		return err
	}

	// The worker repaints; this goroutine only pulls the coordinates down
	for !app.ExitRequested() {
		m.mu.Lock()
		m.y++
		m.mu.Unlock()
		time.Sleep(time.Second)
	}
	return app.Exit()
}
