package mux

import "runtime"

var goos = runtime.GOOS

// InstallHint returns platform-specific remediation for a missing authority.
func InstallHint(authority, platform string) string {
	switch authority {
	case "tmux":
		switch platform {
		case "darwin":
			return "brew install tmux"
		case "linux":
			return "sudo apt install tmux (or your distribution's package manager)"
		case "freebsd":
			return "pkg install tmux"
		default:
			return "see https://github.com/tmux/tmux/wiki/Installing"
		}
	case "shpool":
		if platform == "linux" {
			return "cargo install shpool, then systemctl --user enable --now shpool"
		}
		return "shpool supports Linux only; use tmux or zmx instead"
	case "zmx":
		if platform == "darwin" || platform == "linux" {
			return "download zmx from https://github.com/neurosnap/zmx/releases and put it on PATH"
		}
		return "zmx supports Linux and macOS only; use tmux instead"
	default:
		return "install it and make sure it is on PATH"
	}
}
