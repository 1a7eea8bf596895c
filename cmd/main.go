package main

import (
	"errors"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/tkahng/yahtzee"
	"github.com/tkahng/yahtzee/term"
)

func main() {
	name := "Player"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	player := yahtzee.NewPlayer(name)
	game := yahtzee.NewGame(player, src)

	if err := term.Play(game, os.Stdout); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			os.Exit(0)
		}
		log.Fatalf("game error: %v", err)
	}
}
