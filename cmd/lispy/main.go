// Command lispy is the interactive driver for the interpreter: a readline
// REPL when invoked with no file arguments, or a batch loader over each
// named file otherwise. Grounded on the teacher's cmd/main.go (the
// goroutine+WaitGroup+panic-recovery REPL loop) and on
// launix-de-memcp/scm/prompt.go (the chzyer/readline configuration), with
// cobra supplying the flag surface the way opal-lang-opal's CLIs do.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shengbinmeng/lispy/lispbuiltin"
	"github.com/shengbinmeng/lispy/lispenv"
	"github.com/shengbinmeng/lispy/lispeval"
	"github.com/shengbinmeng/lispy/lispread"
	"github.com/shengbinmeng/lispy/lispval"
)

const (
	prompt = "lispy> "
	banner = "Lispy Version 0.0.1\nPress Ctrl+c to Exit\n"
)

var (
	logLevel    string
	quiet       bool
	historyFile string
	watch       bool
)

func main() {
	root := &cobra.Command{
		Use:   "lispy [file...]",
		Short: "A small homoiconic Lisp interpreter",
		RunE:  run,
	}
	root.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")
	root.Flags().BoolVar(&quiet, "quiet", false, "suppress the startup banner")
	root.Flags().StringVar(&historyFile, "history-file", defaultHistoryFile(), "readline history file path")
	root.Flags().BoolVar(&watch, "watch", false, "in file mode, reload each file whenever it changes on disk")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(0)
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lispy_history"
	}
	return home + "/.lispy_history"
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(logLevel)}))

	env := lispenv.New(nil)
	lispbuiltin.Register(env)

	if len(args) > 0 {
		runFiles(env, args, logger)
		if watch {
			return watchFiles(env, args, logger)
		}
		return nil
	}
	return runREPL(env, logger)
}

func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runFiles implements argc >= 2 mode: `load` each file in turn, printing
// the result only if it comes back as an Err.
func runFiles(env *lispenv.Env, files []string, logger *slog.Logger) {
	for _, name := range files {
		logger.Debug("loading file", "name", name)
		call := lispval.NewSExpr(lispval.Sym("load"), lispval.Str(name))
		result := lispeval.EvalSExpr(env, call)
		if e, ok := result.(lispval.Err); ok {
			fmt.Println(e.String())
		}
	}
}

// watchFiles re-runs runFiles for a single file each time fsnotify reports
// it was written, until the process is interrupted. This is file mode's
// answer to the REPL's interactive reload: edit-save-rerun without
// restarting the interpreter.
func watchFiles(env *lispenv.Env, files []string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, name := range files {
		if err := watcher.Add(name); err != nil {
			return err
		}
	}
	logger.Info("watching files for changes", "files", files)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("file changed, reloading", "name", event.Name)
			runFiles(env, []string{event.Name}, logger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		}
	}
}

// runREPL implements argc == 1 mode: print the banner, then read-eval-print
// lines until EOF or interrupt. Each iteration runs under panic recovery
// so a bug in a builtin cannot take down the whole session, grounded on
// the teacher's own goroutine+WaitGroup+recover restart loop.
func runREPL(env *lispenv.Env, logger *slog.Logger) error {
	sessionID := uuid.NewString()
	logger = logger.With("session_id", sessionID)
	logger.Debug("starting REPL session")

	if !quiet {
		fmt.Print(banner)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	var wg sync.WaitGroup
	wg.Add(1)
	go replLoop(rl, env, logger, &wg)
	wg.Wait()
	return nil
}

func replLoop(rl *readline.Instance, env *lispenv.Env, logger *slog.Logger, wg *sync.WaitGroup) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered panic in REPL iteration", "panic", r, "stack", string(debug.Stack()))
			go replLoop(rl, env, logger, wg)
			return
		}
		wg.Done()
	}()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return
		}
		if err != nil {
			logger.Error("readline error", "err", err)
			return
		}
		if line == "" {
			continue
		}

		top := lispread.Read(line)
		result := lispeval.EvalSExpr(env, top)
		fmt.Println(result.String())
	}
}
