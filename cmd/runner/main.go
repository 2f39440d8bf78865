package main

import (
	"log"

	"github.com/brandonbloom/wslrun/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.ExecuteRunner(); err != nil {
		log.Fatal(err)
	}
}
