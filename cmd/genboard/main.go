// Command genboard turns a hand-written placement document into the
// packed board artifact the server consumes. The document is a JSON grid
// of 6 rows by 5 columns of rank names, row 0 being the owner's back row;
// camp cells stay empty (""). Run once per player, with -player2 for the
// second side.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"landbattle/game"
)

func main() {
	path := flag.String("path", "", "Path to the placement JSON file")
	player2 := flag.Bool("player2", false, "Build the placement for Player2's half")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "genboard: -path is required")
		os.Exit(2)
	}

	board, err := buildFromFile(*path, *player2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genboard: %v\n", err)
		os.Exit(1)
	}

	printBoard(board)
	for i, line := range board.Lines() {
		fmt.Printf("LINE%d=%d\n", i, line)
	}
}

func buildFromFile(path string, player2 bool) (*game.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var grid [][]string
	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("parse placement: %w", err)
	}
	if len(grid) != 6 {
		return nil, fmt.Errorf("placement must have 6 rows, got %d", len(grid))
	}

	player := game.Player1
	if player2 {
		player = game.Player2
	}

	var placement game.Placement
	for y, row := range grid {
		if len(row) != game.Cols {
			return nil, fmt.Errorf("row %d must have %d cells, got %d", y, game.Cols, len(row))
		}
		for x, name := range row {
			if name == "" {
				continue
			}
			piece, ok := game.PieceFromName(name)
			if !ok {
				return nil, fmt.Errorf("row %d column %d: unknown rank %q", y, x, name)
			}
			c := game.Cell{X: x, Y: y}
			if player == game.Player2 {
				c = c.Mirror()
			}
			placement = append(placement, game.Assignment{Cell: c, Piece: piece})
		}
	}

	return game.BuildSide(game.CreateTopology(), player, placement)
}

func printBoard(board *game.Board) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for y := 0; y < game.Rows; y++ {
		for x := 0; x < game.Cols; x++ {
			name := board.PieceAt(game.Cell{X: x, Y: y}).String()
			if name == "" {
				name = "."
			}
			fmt.Fprintf(w, "%s\t", name)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
