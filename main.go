package main

import (
	"log"
)

func main() {
	log.SetFlags(log.Lmicroseconds | log.Lshortfile)
	// Arguments are ignored.
	new(Loop).Run()
}
