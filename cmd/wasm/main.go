//go:build js && wasm

package main

import (
	"moleculebg/background"
	"moleculebg/webcanvas"
)

func main() {
	webcanvas.Run(background.DefaultConfig(), nil)

	// Callbacks keep running after main returns only while the program is alive
	select {}
}
