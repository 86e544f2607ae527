package mclog

/*
Shutdown escalation collaborator: picks the platform's text file viewer and
launches it on the error file. Launching is fire-and-forget through
util.StartProcess; the engine never waits for, or reads from, the viewer.
*/

import (
	"runtime"

	"github.com/abyssdigger/mclog/util"
)

// viewerCommand picks the viewer command for the current platform.
func viewerCommand(path string) (name string, args []string) {
	switch runtime.GOOS {
	case "windows":
		return "notepad.exe", []string{path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// launchViewer opens the platform viewer on path. Used by Engine.Shutdown.
func launchViewer(path string) error {
	name, args := viewerCommand(path)
	return util.StartProcess(name, args...)
}
