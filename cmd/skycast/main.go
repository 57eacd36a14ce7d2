package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/pasanw/skycast/internal/config"
	"github.com/pasanw/skycast/internal/location"
	"github.com/pasanw/skycast/internal/openweather"
	"github.com/pasanw/skycast/internal/ui"
	"github.com/pasanw/skycast/internal/weather"
)

func main() {
	city := flag.String("city", "", "Start with this city instead of locating the device (e.g., Colombo)")
	locate := flag.Bool("locate", true, "Locate the device by IP; -locate=false withholds consent")
	debug := flag.Bool("debug", false, "Write debug logs to skycast.log")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.FromEnv()

	if *debug {
		f, err := tea.LogToFile("skycast.log", "skycast")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		// Keep stray log writes off the alt screen.
		log.SetOutput(io.Discard)
	}

	var provider location.PositionProvider
	if *locate {
		provider = location.NewIPLocator()
	} else {
		provider = location.Denied()
	}

	resolver := location.NewResolver(provider, cfg.FallbackCity)
	svc := weather.NewService(openweather.NewClient(cfg.APIKey), cfg.APIKey)

	p := tea.NewProgram(ui.NewModel(resolver, svc, *city), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
