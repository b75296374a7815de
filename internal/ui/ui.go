package ui

import (
	"fmt"
	"os"
	"path/filepath"

	. "mdgo/internal/config"
	"mdgo/internal/formatter"
	mdio "mdgo/internal/io"
	. "mdgo/internal/logger"
	. "mdgo/internal/selection"

	. "github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
	"github.com/rjeczalik/notify"
)

// Ui is a minimal markdown editor hosting the formatter: it owns the
// buffer, the caret and the selection, and hands them to the engine on
// every formatting keybinding.
type Ui struct {
	COLUMNS int
	ROWS    int

	Screen Screen
	Conf   Config

	Text      string
	Caret     int  // byte offset
	Anchor    int  // selection anchor offset
	Selecting bool

	Y int // row offset for scrolling

	Filename         string
	AbsoluteFilePath string
	IsContentChanged bool
	IsFileUpdated    bool // file rewritten outside the editor

	Formatter   *formatter.Formatter
	Highlighter Highlighter
	Colors      [][]Color

	Watcher *mdio.DirWatcher

	Update bool
	Done   bool

	status string
}

func NewUi(conf Config) *Ui {
	u := &Ui{Conf: conf}
	u.Formatter = formatter.New(u, u, conf)
	u.Highlighter.SetTheme(conf.Theme)
	return u
}

// Buffer and Commit make Ui the formatter's surface.
func (u *Ui) Buffer() (string, Selection) {
	return u.Text, u.Selection()
}

func (u *Ui) Commit(buffer string, sel Selection) {
	u.Text = buffer
	sel = sel.Clamp(len(buffer))
	if sel.IsEmpty() {
		u.Selecting = false
		u.Caret = sel.Start
		u.Anchor = sel.Start
	} else {
		u.Selecting = true
		u.Anchor = sel.Start
		u.Caret = sel.End
	}
	u.IsContentChanged = true
	u.Recolor()
	u.Focus()
	u.Update = true
}

// Selection reports the current selection, caret when inactive.
func (u *Ui) Selection() Selection {
	if u.Selecting && u.Anchor != u.Caret {
		return Range(u.Anchor, u.Caret)
	}
	return Caret(u.Caret)
}

func (u *Ui) Start(filename string) {
	u.Init()
	defer u.Screen.Fini()

	if filename != "" {
		if err := u.OpenFile(filename); err != nil {
			u.Screen.Fini()
			fmt.Println(err)
			os.Exit(130)
		}
	}

	for !u.Done {
		if u.Update {
			u.DrawEverything()
			u.Screen.Show()
			u.Update = false
		}
		u.HandleEvents()
	}
}

func (u *Ui) Init() {
	encoding.Register()
	screen, err := NewScreen()
	if err != nil { fmt.Fprintf(os.Stderr, "%v\n", err); os.Exit(1) }
	u.Screen = screen

	if err := u.Screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	u.Screen.Clear()
	u.COLUMNS, u.ROWS = u.Screen.Size()
	u.Update = true
	u.Recolor()
}

func (u *Ui) OpenFile(fname string) error {
	content, err := mdio.ReadFileToString(fname)
	if err != nil { return err }

	u.Filename = fname
	u.AbsoluteFilePath, _ = filepath.Abs(fname)
	u.Text = content
	u.Caret = 0
	u.Anchor = 0
	u.Selecting = false
	u.Y = 0
	u.IsContentChanged = false
	u.IsFileUpdated = false
	u.Recolor()

	if u.Watcher != nil { u.Watcher.Stop() }
	u.Watcher = mdio.NewDirWatcher(filepath.Dir(u.AbsoluteFilePath))
	err = u.Watcher.StartWatch(u.OnFileUpdate)
	if err != nil { Log.Error("watch:", err.Error()) }

	Log.Info("opened", fname)
	return nil
}

func (u *Ui) OnFileUpdate(event notify.EventInfo) {
	if event.Path() != u.AbsoluteFilePath { return }
	// local edits win, just flag the conflict in the status line
	u.IsFileUpdated = true
}

func (u *Ui) Save() {
	if u.Filename == "" { return }
	err := mdio.WriteStringToFile(u.Filename, u.Text)
	if err != nil { u.status = err.Error(); return }
	u.IsContentChanged = false
	u.IsFileUpdated = false
	u.status = "saved"
	Log.Info("saved", u.Filename)
}

func (u *Ui) HandleEvents() {
	ev := u.Screen.PollEvent()
	switch ev := ev.(type) {
	case *EventResize:
		u.COLUMNS, u.ROWS = u.Screen.Size()
		u.Update = true

	case *EventKey:
		u.Update = true
		u.HandleKeyboard(ev.Key(), ev.Rune(), ev.Modifiers())
	}
}
