package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lk16/flippy-bot/internal/cmd/move"
	"github.com/lk16/flippy-bot/internal/othello"
)

func main() {
	inputPath := flag.String("input", "", "input file with the board to show")
	boardString := flag.String("board", "", "the board to show, as printed by the server logs")
	flag.Parse()

	var state othello.State
	var err error

	switch {
	case *inputPath != "":
		state, err = move.ReadState(*inputPath)
	case *boardString != "":
		state, err = othello.NewStateFromString(*boardString)
	default:
		err = errors.New("either -input or -board is required")
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	state.Print()
}
