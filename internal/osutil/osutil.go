// Package osutil holds operating system names and process exit codes.
package osutil

const Windows = "windows"

type exitCode int

const ExitError exitCode = 1
