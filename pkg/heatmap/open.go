// 19 Oct 2026

package heatmap

import (
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

// viewer is the command which hands a file to the desktop.
func viewer(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open asks the desktop to show the file at path. We do not wait
// for the viewer to finish.
func Open(path string) error {
	name, args := viewer(runtime.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "starting %s", name)
	}
	go cmd.Wait() // reap it, whenever it finishes
	return nil
}
