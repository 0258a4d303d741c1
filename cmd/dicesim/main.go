// dicesim is a Monte Carlo simulator for weighted dice.
//
// Usage:
//
//	dicesim <command> [options]
//
// Commands:
//
//	roll     - Roll a single ad-hoc die
//	show     - Print the configured dice and their weights
//	play     - Play the configured game and print the results table
//	analyze  - Play the configured game and print statistics
//	words    - Play a letter game and list permutations that spell words
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	errUsage = errors.New("usage")
	errHelp  = errors.New("help requested")
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errHelp) {
			return
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)
		return errUsage
	}

	switch args[0] {
	case "roll":
		return runRoll(args[1:], out)
	case "show", "play", "analyze", "words":
		return runGame(args[0], args[1:], out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		fmt.Fprintf(out, "Unknown command: %s\n\n", args[0])
		printUsage(out)
		return errUsage
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `dicesim - weighted dice Monte Carlo simulator

Usage: dicesim <command> [options]

Commands:
  roll     Roll a single ad-hoc die
  show     Print the configured dice and their weights
  play     Play the configured game and print the results table
  analyze  Play the configured game and print statistics
  words    Play a letter game and list permutations that spell words

Examples:
  dicesim roll -faces=H,T -weights=H=5 -count=10
  dicesim play -config=sim.yaml -rolls=1000 -layout=narrow -format=csv
  dicesim analyze -config=sim.yaml -stat=combos -limit=10
  dicesim words -config=letters.yaml -dict=scrabble_words.txt

Use "dicesim <command> -h" for more information about a command.`)
}
