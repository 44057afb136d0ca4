// Command tzinfo inspects the known timezone identifier table: it lists the
// presentation choices or checks a candidate identifier the same way field
// validation does.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"tzfield/config"
	"tzfield/di"
	"tzfield/field"
	"tzfield/shared/logger"
	"tzfield/shared/timezone"
	"tzfield/zones"

	"github.com/rs/zerolog/log"
)

func main() {
	list := flag.Bool("list", false, "list all identifiers with GMT offset labels")
	check := flag.String("check", "", "validate a candidate identifier")
	event := flag.String("event", "", "fetch an event by id and print its localized starts_at")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	if *list {
		for _, choice := range zones.PrettyChoices() {
			fmt.Println(choice.Label)
		}

		return
	}

	if *check != "" {
		tzField, err := field.NewTimeZoneField()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to construct timezone field")
		}

		tz := tzField.Coerce(*check)
		if err := tzField.Validate(tz); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *check, err)
			os.Exit(1)
		}

		loc, _ := tz.Location()
		fmt.Printf("%s ok (default zone %s)\n", loc, timezone.Default())

		return
	}

	if *event != "" {
		svc, err := di.InitializeEventService()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event service")
		}

		res, err := svc.Get(context.Background(), *event)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *event, err)
			os.Exit(1)
		}

		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to encode event")
		}

		fmt.Println(string(out))

		return
	}

	flag.Usage()
}
