//go:build !windows

package tty_test

import (
	"testing"

	"github.com/srlehn/termctl/internal"
	"github.com/srlehn/termctl/term"
	"github.com/srlehn/termctl/tty/contdtty"
	"github.com/srlehn/termctl/tty/devtty"
	"github.com/srlehn/termctl/tty/gotty"
	"github.com/srlehn/termctl/tty/pkgterm"
	"github.com/srlehn/termctl/tty/uroottty"
	"github.com/srlehn/termctl/tty/xtty"
)

type ttyProvFunc func(ptyName string) (term.TTY, error)

func wrapTTYProv[T term.TTY, F func(ptyName string) (T, error)](ttyProvFunc F) ttyProvFunc {
	return func(ptyName string) (term.TTY, error) { return ttyProvFunc(ptyName) }
}

func TestTTYNewAll(t *testing.T) {
	if tty, err := devtty.New(internal.DefaultTTYDevice()); err != nil {
		t.Skipf("no controlling terminal: %v", err)
	} else {
		tty.Close()
	}

	tests := map[string]ttyProvFunc{
		`devtty`:     wrapTTYProv(devtty.New),
		`gotty`:      gotty.New,
		`containerd`: wrapTTYProv(contdtty.New),
		`pkgterm`:    wrapTTYProv(pkgterm.New),
		`uroot`:      wrapTTYProv(uroottty.New),
		`xtty`:       wrapTTYProv(xtty.New),
	}
	for name, ttyProv := range tests {
		t.Run(name, func(t *testing.T) {
			testDeviceName(t, ttyProv)
			testSize(t, ttyProv)
		})
	}
}

func testDeviceName(t *testing.T, ttyProv ttyProvFunc) {
	t.Run(`device_name_test`, func(t *testing.T) {
		tty, err := ttyProv(internal.DefaultTTYDevice())
		if err != nil {
			t.Fatal(err)
		}
		defer tty.Close()
		devName := tty.TTYDevName()
		if !internal.IsDefaultTTY(devName) {
			t.Fatalf("tty device \"%s\" not a default tty\n", devName)
		}
		t.Logf("tty device name: %s\n", devName)
		tty.Close()
	})
}

func testSize(t *testing.T, ttyProv ttyProvFunc) {
	t.Run(`size_test`, func(t *testing.T) {
		tty, err := ttyProv(internal.DefaultTTYDevice())
		if err != nil {
			t.Fatal(err)
		}
		defer tty.Close()
		sz, err := term.GetSize(tty)
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("cells: %dx%d, pixels: %dx%d\n", sz.Width, sz.Height, sz.PixelWidth, sz.PixelHeight)
		if sz.Width < 1 || sz.Height < 1 {
			t.Fatal("terminal cell size is 0")
		}
		tty.Close()
	})
}
