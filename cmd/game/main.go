// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-hex-grid/internal/config"
	"go-hex-grid/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

const startFromGame = true // true starts on the grid, false on the menu

type App struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	settings := config.DefaultSettings()
	if len(os.Args) > 1 {
		var err error
		settings, err = config.LoadSettings(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGridState(sm, settings))
	} else {
		sm.SetState(state.NewMenuState(sm, settings))
	}
	app := &App{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Hexagonal Grid")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
