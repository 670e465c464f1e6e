package ui

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/yBoranbayev/rollcall/config"
	"github.com/yBoranbayev/rollcall/models"
	"github.com/yBoranbayev/rollcall/signin"
	"github.com/yBoranbayev/rollcall/storage"
)

// Kiosk owns the window and forwards submissions to the controller.
type Kiosk struct {
	cfg        config.Config
	controller *signin.Controller
	store      *storage.DailyLogStore
	rosterSize int

	window     fyne.Window
	idEntry    *widget.Entry
	statusText *canvas.Text

	todayRecords []models.Record
	logTable     *widget.Table
	recordsLabel *widget.Label
}

func NewKiosk(app fyne.App, cfg config.Config, controller *signin.Controller, store *storage.DailyLogStore, rosterSize int) *Kiosk {
	k := &Kiosk{
		cfg:        cfg,
		controller: controller,
		store:      store,
		rosterSize: rosterSize,
	}

	k.window = app.NewWindow(cfg.Title)
	k.window.Resize(fyne.NewSize(1920, 1080))
	k.window.SetContent(k.buildContent())
	k.window.SetMaster()
	return k
}

// ShowAndRun displays the window and blocks until it is closed. Startup
// problems that leave the kiosk degraded but usable are reported here, once
// the window exists to host the dialogs.
func (k *Kiosk) ShowAndRun(startupErrs []error) {
	for _, err := range startupErrs {
		dialog.ShowError(err, k.window)
	}
	k.window.Canvas().Focus(k.idEntry)
	k.window.ShowAndRun()
}

func (k *Kiosk) buildContent() fyne.CanvasObject {
	tabs := container.NewAppTabs(
		container.NewTabItem("Sign-In", k.buildSignInView()),
		container.NewTabItem("Today's Log", k.buildLogView()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	statusBar := container.NewHBox(
		widget.NewLabel(fmt.Sprintf("Roster Members: %d", k.rosterSize)),
		widget.NewLabel(" | "),
		k.recordsLabel,
	)
	bottom := container.NewVBox(widget.NewSeparator(), statusBar)
	return container.NewBorder(nil, bottom, nil, nil, tabs)
}

func (k *Kiosk) buildSignInView() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(k.cfg.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	prompt := widget.NewLabelWithStyle("Enter Student ID:", fyne.TextAlignCenter, fyne.TextStyle{})

	k.idEntry = widget.NewEntry()
	k.idEntry.SetPlaceHolder("Student ID")
	k.idEntry.OnSubmitted = func(string) { k.submit() }

	button := widget.NewButton("Sign In / Sign Out", k.submit)

	k.statusText = canvas.NewText("", latteText)
	k.statusText.Alignment = fyne.TextAlignCenter
	k.statusText.TextSize = 18

	form := container.NewVBox(
		title,
		prompt,
		k.idEntry,
		button,
		k.statusText,
	)
	card := container.NewCenter(container.NewGridWrap(fyne.NewSize(420, 240), form))

	if bg := k.loadBackground(); bg != nil {
		return container.NewStack(bg, card)
	}
	return card
}

func (k *Kiosk) loadBackground() fyne.CanvasObject {
	if _, err := os.Stat(k.cfg.BackgroundPath); err != nil {
		// Reported as a startup dialog; the kiosk still works on the
		// themed background.
		return nil
	}
	bg := canvas.NewImageFromFile(k.cfg.BackgroundPath)
	bg.FillMode = canvas.ImageFillStretch
	return bg
}

// BackgroundMissing reports whether the configured background image exists.
func (k *Kiosk) BackgroundMissing() bool {
	_, err := os.Stat(k.cfg.BackgroundPath)
	return err != nil
}

func (k *Kiosk) submit() {
	input := k.idEntry.Text

	outcome, err := k.controller.Process(input)
	switch {
	case errors.Is(err, signin.ErrEmptyInput), errors.Is(err, signin.ErrUnknownMember):
		k.setStatus(err.Error(), latteRed)
	case err != nil:
		dialog.ShowError(err, k.window)
	default:
		k.setStatus(outcome.Message, latteGreen)
		k.refreshLog()
	}

	// Always hand the entry back ready for the next student.
	k.idEntry.SetText("")
	k.window.Canvas().Focus(k.idEntry)
}

func (k *Kiosk) setStatus(msg string, c color.Color) {
	k.statusText.Text = msg
	k.statusText.Color = c
	k.statusText.Refresh()
}

func (k *Kiosk) buildLogView() fyne.CanvasObject {
	k.recordsLabel = widget.NewLabel("")
	k.refreshRecords()

	k.logTable = widget.NewTable(
		func() (int, int) { return len(k.todayRecords) + 1, 4 },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			l := o.(*widget.Label)
			if id.Row == 0 {
				l.TextStyle.Bold = true
				switch id.Col {
				case 0:
					l.SetText("Student ID")
				case 1:
					l.SetText("Status")
				case 2:
					l.SetText("Date")
				case 3:
					l.SetText("Time")
				}
				return
			}
			l.TextStyle.Bold = false
			rec := k.todayRecords[id.Row-1]
			switch id.Col {
			case 0:
				l.SetText(rec.StudentID)
			case 1:
				l.SetText(string(rec.Status))
			case 2:
				l.SetText(rec.Date)
			case 3:
				l.SetText(rec.Time)
			}
		},
	)
	k.logTable.SetColumnWidth(0, 160)
	k.logTable.SetColumnWidth(1, 120)
	k.logTable.SetColumnWidth(2, 120)
	k.logTable.SetColumnWidth(3, 100)
	return container.NewScroll(k.logTable)
}

func (k *Kiosk) refreshRecords() {
	records, err := k.store.Records(storage.Today())
	if err != nil {
		records = []models.Record{}
	}
	k.todayRecords = records
	k.recordsLabel.SetText("Today's Records: " + strconv.Itoa(len(records)))
}

func (k *Kiosk) refreshLog() {
	k.refreshRecords()
	if k.logTable != nil {
		k.logTable.Refresh()
	}
}
