// Command covtri runs the point cover and triangle path engines from
// the command line, reproducing the classic read → compute → narrate
// pipeline around the pure library packages.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error.
		os.Exit(1)
	}
}
