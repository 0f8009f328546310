// Modus prints scale notes, step patterns and diatonic seventh chords for a root and scale type.
package main

import "github.com/mouse-blink/modus/cmd"

func main() {
	cmd.Execute()
}
