package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"github.com/trafficsim/trafficlight-go/internal/config"
)

func main() {
	fmt.Println("Traffic Light Go")

	if err := config.Flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Panic(err)
	}

	d, err := setup()
	if err != nil {
		log.Panic(err)
	}

	if err := d.Execute(context.Background()); err != nil {
		log.Panic(err)
	}
}
