package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"sdrbox/device"
	"sdrbox/display"
	"sdrbox/host/console"
)

var (
	devicePath = flag.String("device", "/dev/ttyACM0", "Serial device path")
	scale      = flag.Int("scale", 4, "Screenshot scale factor")
)

func main() {
	flag.Parse()

	fmt.Printf("Connecting to %s...\n", *devicePath)
	c, err := console.Dial(*devicePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	dict, err := c.Identify()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to retrieve dictionary: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Connected to %s (%d commands)\n", dict.Version, len(dict.Commands))

	c.OnLog(func(msg string) {
		fmt.Printf("\r%s\n> ", msg)
	})

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if parts[0] == "quit" || parts[0] == "exit" || parts[0] == "q" {
			return
		}
		if err := run(c, parts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func run(c *console.Client, parts []string) error {
	switch parts[0] {
	case "help", "?":
		printHelp()
		return nil

	case "mode":
		return c.AdvanceMode()

	case "hiscore-reset":
		return c.ResetHighScore()

	case "events":
		return c.DumpEvents()

	case "debug":
		if len(parts) != 2 || (parts[1] != "on" && parts[1] != "off") {
			return fmt.Errorf("usage: debug on|off")
		}
		return c.SetDebug(parts[1] == "on")

	case "status":
		s, err := c.Status()
		if err != nil {
			return err
		}
		fmt.Printf("mode=%s commits=%d\n", device.Mode(s.Mode), s.Commits)
		if s.InPlay {
			fmt.Printf("score=%d hiscore=%d lives=%d level=%d\n", s.Score, s.HighScore, s.Lives, s.Level)
		} else {
			fmt.Printf("attract screen, hiscore=%d\n", s.HighScore)
		}
		return nil

	case "shot":
		frame, err := c.Screenshot()
		if err != nil {
			return err
		}
		if len(parts) < 2 {
			fmt.Print(display.Text(frame))
			return nil
		}
		if err := console.SaveScreenshot(parts[1], frame, *scale); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", parts[1])
		return nil

	case "dict":
		printDictionary(c.Dictionary())
		return nil

	case "reboot":
		return c.Reboot()

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", parts[0])
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  mode            - Advance to the next mode")
	fmt.Println("  status          - Show mode and game state")
	fmt.Println("  shot [file]     - Screenshot as ASCII, or to a .png/.bmp file")
	fmt.Println("  events          - Dump the event ring")
	fmt.Println("  debug on|off    - Switch the device debug log")
	fmt.Println("  hiscore-reset   - Clear the high score")
	fmt.Println("  dict            - Print the dictionary")
	fmt.Println("  reboot          - Reset the device")
	fmt.Println("  quit/exit/q     - Exit the program")
	fmt.Println()
}

func printDictionary(dict *console.Dictionary) {
	fmt.Printf("Version: %s\n", dict.Version)

	keys := make([]string, 0, len(dict.Config))
	for k := range dict.Config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println("Config:")
	for _, k := range keys {
		fmt.Printf("  %s = %s\n", k, dict.Config[k])
	}

	printTable("Commands", dict.Commands)
	printTable("Responses", dict.Responses)
}

func printTable(title string, table map[string]int) {
	formats := make([]string, 0, len(table))
	for f := range table {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return table[formats[i]] < table[formats[j]] })
	fmt.Printf("%s (%d):\n", title, len(table))
	for _, f := range formats {
		fmt.Printf("  [%d] %s\n", table[f], f)
	}
}
