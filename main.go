package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/yBoranbayev/rollcall/config"
	"github.com/yBoranbayev/rollcall/signin"
	"github.com/yBoranbayev/rollcall/storage"
	"github.com/yBoranbayev/rollcall/ui"
)

func main() {
	cfg := config.Load()

	var startupErrs []error

	// A failed roster load leaves the set empty, so every sign-in attempt
	// is rejected until the file is fixed and the kiosk restarted.
	roster, err := storage.LoadRoster(cfg.RosterPath)
	if err != nil {
		startupErrs = append(startupErrs, err)
	}

	store := storage.NewDailyLogStore(cfg.LogDir)
	controller := signin.NewController(roster, store, cfg.StrictToggle)

	a := app.New()
	a.Settings().SetTheme(ui.NewCatppuccinLatteTheme())

	kiosk := ui.NewKiosk(a, cfg, controller, store, len(roster))
	if kiosk.BackgroundMissing() {
		startupErrs = append(startupErrs, fmt.Errorf("failed to load background image: %s", cfg.BackgroundPath))
	}
	kiosk.ShowAndRun(startupErrs)
}
