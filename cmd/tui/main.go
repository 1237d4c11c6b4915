package main

import (
	"flag"
	"fmt"
	"os"

	"todoweb/internal/client"
	"todoweb/internal/eventbus"
	"todoweb/internal/tui"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "todoweb API base URL")
	open := flag.String("open", "", `initial view: "create=true" or "edit=<id>"`)
	flag.Parse()

	route, err := tui.ParseRoute(*open)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	api, err := client.New(*addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := tui.Run(api, eventbus.New(), route); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
