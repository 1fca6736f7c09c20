package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/vgatext"
	"github.com/BeatGlow/vgatext/physmem"
	"github.com/BeatGlow/vgatext/render"
	"github.com/BeatGlow/vgatext/termview"
)

func main() {
	fgFlag := flag.Uint("fg", uint(vgatext.DefaultColorCode.Foreground()), "Foreground color (0-15)")
	bgFlag := flag.Uint("bg", uint(vgatext.DefaultColorCode.Background()), "Background color (0-15)")
	outFlag := flag.String("o", "screen.png", "Output file for png mode")
	sizeFlag := flag.Float64("size", render.DefaultConfig.Size, "Font size in points for png mode")
	consoleFlag := flag.String("console", physmem.DefaultConfig.Console, "Console checked for text mode in mem mode (empty to skip)")
	trueColorFlag := flag.Bool("truecolor", false, "Use the exact VGA palette in term mode")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <term|png|mem> [text...]\n", os.Args[0])
		os.Exit(1)
	}

	fg, err := vgatext.ColorFromCode(uint8(*fgFlag))
	if err != nil {
		fatal(err)
	}
	bg, err := vgatext.ColorFromCode(uint8(*bgFlag))
	if err != nil {
		fatal(err)
	}
	code := vgatext.NewColorCode(fg, bg)

	var input io.Reader = os.Stdin
	if flag.NArg() > 1 {
		input = strings.NewReader(strings.Join(flag.Args()[1:], " ") + "\n")
	}

	switch mode := flag.Arg(0); mode {
	case "term":
		err = runTerm(writerFor(code), input, *trueColorFlag)
	case "png":
		err = runPNG(writerFor(code), input, *outFlag, *sizeFlag)
	case "mem":
		err = runMem(code, input, *consoleFlag)
	default:
		err = fmt.Errorf("unsupported mode %q", mode)
	}
	if err != nil {
		fatal(err)
	}
}

// writerFor returns the process wide writer, or a private one for non-default colors.
func writerFor(code vgatext.ColorCode) *vgatext.Locked {
	if code == vgatext.DefaultColorCode {
		return vgatext.Default()
	}
	return vgatext.NewLocked(vgatext.NewWriter(vgatext.NewBuffer(), code))
}

func copyTo(l *vgatext.Locked, input io.Reader) (err error) {
	l.Do(func(w *vgatext.Writer) {
		_, err = io.Copy(w, input)
	})
	return
}

func runTerm(l *vgatext.Locked, input io.Reader, trueColor bool) error {
	if err := copyTo(l, input); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	view := termview.New(screen)
	view.TrueColor = trueColor
	refresh := func() {
		l.Do(func(w *vgatext.Writer) {
			view.Refresh(w.Memory())
		})
	}
	refresh()

	// Typed keys are written to the buffer, escape quits.
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			refresh()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEsc, tcell.KeyCtrlC:
				return nil
			case tcell.KeyEnter:
				l.Do(func(w *vgatext.Writer) { _ = w.WriteByte('\n') })
			case tcell.KeyRune:
				l.Do(func(w *vgatext.Writer) { _, _ = w.WriteString(string(ev.Rune())) })
			}
			refresh()
		}
	}
}

func runPNG(l *vgatext.Locked, input io.Reader, name string, size float64) error {
	if err := copyTo(l, input); err != nil {
		return err
	}

	r, err := render.New(&render.Config{Size: size})
	if err != nil {
		return err
	}

	var s vgatext.Snapshot
	l.Do(func(w *vgatext.Writer) {
		s = vgatext.Capture(w.Memory())
	})

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = render.Encode(f, r.Render(&s)); err != nil {
		_ = f.Close()
		return err
	}
	fmt.Printf("wrote %s (%s)\n", name, r.Bounds().Size())
	return f.Close()
}

func runMem(code vgatext.ColorCode, input io.Reader, console string) error {
	if _, err := host.Init(); err != nil {
		return err
	}

	dev, err := physmem.Open(&physmem.Config{
		Base:    vgatext.PhysAddr,
		Console: console,
	})
	if err != nil {
		return err
	}
	defer dev.Close()
	fmt.Printf("using device: %s\n", dev)

	return copyTo(vgatext.NewLocked(vgatext.NewWriter(dev, code)), input)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
