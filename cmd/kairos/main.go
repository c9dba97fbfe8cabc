// Command kairos is a flag-driven CLI over the library: parse a date,
// format it, list a locale's holidays for a year, and check business
// days — mirroring the teacher's cmd/goholidays CLI shape, re-pointed at
// Kairos's locale/rule-based holiday engine instead of one hardcoded
// country package per flag.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/kairos-go/kairos"
	"github.com/kairos-go/kairos/business"
	"github.com/kairos-go/kairos/calendar"
	"github.com/kairos-go/kairos/holiday"
	"github.com/kairos-go/kairos/locale"
)

func main() {
	var (
		input    = flag.String("input", "", "Date/time string to parse and print (defaults to now)")
		layout   = flag.String("format", "YYYY-MM-DD HH:mm:ss", "Output format token string")
		localeCode = flag.String("locale", "en-US", "Locale code for names/holidays")
		region   = flag.String("region", "", "Region filter for regional holidays")
		year     = flag.Int("year", time.Now().Year(), "Year to list holidays for")
		listHolidays = flag.Bool("holidays", false, "List the active locale's holidays for -year")
		checkBusiness = flag.Bool("business", false, "Check whether -input is a business day")
		asJSON   = flag.Bool("json", false, "Emit JSON instead of a table")
		listLocales = flag.Bool("list-locales", false, "List every registered locale code")
	)
	flag.Parse()

	if *listLocales {
		codes := locale.Global.List()
		sort.Strings(codes)
		for _, c := range codes {
			fmt.Println(c)
		}
		return
	}

	kairos.SetLocale(*localeCode)

	if *listHolidays {
		runHolidays(*year, *region, *asJSON)
		return
	}

	var instant kairos.Instant
	if *input == "" {
		instant = kairos.Now()
	} else {
		instant = kairos.New(*input)
	}
	if !instant.IsValid() {
		log.Fatalf("kairos: could not parse %q", *input)
	}

	if *checkBusiness {
		runBusinessCheck(instant, *region)
		return
	}

	fmt.Println(instant.Format(*layout))
}

func runHolidays(year int, region string, asJSON bool) {
	loc, ok := locale.Global.ActiveLocale()
	if !ok {
		log.Fatalf("kairos: no active locale")
	}
	engine, err := holiday.NewEngine(0, nil)
	if err != nil {
		log.Fatalf("kairos: %v", err)
	}
	infos, err := engine.HolidaysInYear(loc.HolidayRules(region), year, region)
	if err != nil {
		log.Fatalf("kairos: %v", err)
	}

	if asJSON {
		if err := json.NewEncoder(os.Stdout).Encode(infos); err != nil {
			log.Fatalf("kairos: %v", err)
		}
		return
	}

	fmt.Printf("Holidays for %s in %d:\n\n", loc.Code, year)
	fmt.Printf("%-12s %-30s %-12s\n", "Date", "Name", "Observed")
	for _, info := range infos {
		observed := ""
		if info.Observed {
			observed = info.Date.String()
		}
		fmt.Printf("%-12s %-30s %-12s\n", info.OriginalDate.String(), info.Name, observed)
	}
}

func runBusinessCheck(instant kairos.Instant, region string) {
	loc, ok := locale.Global.ActiveLocale()
	if !ok {
		log.Fatalf("kairos: no active locale")
	}
	engine, err := holiday.NewEngine(0, nil)
	if err != nil {
		log.Fatalf("kairos: %v", err)
	}
	cal, err := business.New(engine, business.Config{Rules: loc.HolidayRules(region), Region: region})
	if err != nil {
		log.Fatalf("kairos: %v", err)
	}

	date := calendar.Date{Year: instant.Year(), Month: instant.Month(), Day: instant.Day()}
	ok, err = cal.IsBusinessDay(date)
	if err != nil {
		log.Fatalf("kairos: %v", err)
	}
	if ok {
		fmt.Printf("%s is a business day\n", date.String())
		return
	}
	fmt.Printf("%s is not a business day\n", date.String())
	next, err := cal.NextBusinessDay(date)
	if err != nil {
		log.Fatalf("kairos: %v", err)
	}
	fmt.Printf("Next business day: %s\n", next.String())
}
