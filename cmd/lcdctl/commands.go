package main

import (
	"image"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"seriallcd/pkg/proto"
)

type loader func(src string) (image.Image, error)

type command struct {
	usage string
	min   int
	max   int
	run   func(dev proto.Control, load loader, args []string) error
}

func noArgs(fn func(dev proto.Control) error) func(proto.Control, loader, []string) error {
	return func(dev proto.Control, _ loader, _ []string) error {
		return fn(dev)
	}
}

func numeric(fn func(dev proto.Control, v []int) error) func(proto.Control, loader, []string) error {
	return func(dev proto.Control, _ loader, args []string) error {
		v, err := ints(args)
		if err != nil {
			return err
		}
		return fn(dev, v)
	}
}

func ints(args []string) ([]int, error) {
	v := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Errorf("argument %d: %q is not a number", i+1, a)
		}
		v[i] = n
	}
	return v, nil
}

func onOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "set":
		return true, nil
	case "off", "clear":
		return false, nil
	}
	return strconv.ParseBool(s)
}

var commands = map[string]command{
	"clear":        {"", 0, 0, noArgs(proto.Control.Clear)},
	"reverse":      {"", 0, 0, noArgs(proto.Control.ReverseVideo)},
	"splash":       {"", 0, 0, noArgs(proto.Control.Splash)},
	"demo":         {"", 0, 0, noArgs(proto.Control.Demo)},
	"home":         {"", 0, 0, noArgs(proto.Control.Home)},
	"restore-baud": {"", 0, 0, noArgs(proto.Control.RestoreBaudRate)},
	"backlight": {"DUTY", 1, 1, numeric(func(dev proto.Control, v []int) error {
		return dev.SetBacklight(v[0])
	})},
	"baud": {"RATE", 1, 1, numeric(func(dev proto.Control, v []int) error {
		return dev.SetBaudRate(v[0])
	})},
	"x": {"X", 1, 1, numeric(func(dev proto.Control, v []int) error {
		return dev.SetX(v[0])
	})},
	"y": {"Y", 1, 1, numeric(func(dev proto.Control, v []int) error {
		return dev.SetY(v[0])
	})},
	"pos": {"X Y", 2, 2, numeric(func(dev proto.Control, v []int) error {
		return dev.SetPosition(v[0], v[1])
	})},
	"row": {"ROW", 1, 1, numeric(func(dev proto.Control, v []int) error {
		return dev.SetRow(v[0])
	})},
	"col": {"COL", 1, 1, numeric(func(dev proto.Control, v []int) error {
		return dev.SetCol(v[0])
	})},
	"rowcol": {"ROW COL", 2, 2, numeric(func(dev proto.Control, v []int) error {
		return dev.SetRowCol(v[0], v[1])
	})},
	"text": {"TEXT [left|center|right] [WIDTH]", 1, 3, func(dev proto.Control, _ loader, args []string) error {
		var name string
		if len(args) > 1 {
			name = args[1]
		}
		align, err := proto.ParseAlign(name)
		if err != nil {
			return err
		}
		var width int
		if len(args) > 2 {
			if width, err = strconv.Atoi(args[2]); err != nil {
				return errors.Errorf("width %q is not a number", args[2])
			}
		}
		return dev.WriteText(args[0], align, width)
	}},
	"writeln": {"TEXT", 1, 1, func(dev proto.Control, _ loader, args []string) error {
		return dev.WriteLine(args[0])
	}},
	"pixel": {"X Y [on|off]", 2, 3, func(dev proto.Control, _ loader, args []string) error {
		v, err := ints(args[:2])
		if err != nil {
			return err
		}
		on := true
		if len(args) > 2 {
			if on, err = onOff(args[2]); err != nil {
				return errors.Errorf("pixel state %q", args[2])
			}
		}
		return dev.SetPixel(v[0], v[1], on)
	}},
	"line": {"X1 Y1 X2 Y2", 4, 4, numeric(func(dev proto.Control, v []int) error {
		return dev.SetLine(v[0], v[1], v[2], v[3])
	})},
	"clear-line": {"X1 Y1 X2 Y2", 4, 4, numeric(func(dev proto.Control, v []int) error {
		return dev.ClearLine(v[0], v[1], v[2], v[3])
	})},
	"box": {"X1 Y1 X2 Y2", 4, 4, numeric(func(dev proto.Control, v []int) error {
		return dev.SetBox(v[0], v[1], v[2], v[3])
	})},
	"clear-box": {"X1 Y1 X2 Y2", 4, 4, numeric(func(dev proto.Control, v []int) error {
		return dev.ClearBox(v[0], v[1], v[2], v[3])
	})},
	"circle": {"X Y RADIUS", 3, 3, numeric(func(dev proto.Control, v []int) error {
		return dev.SetCircle(v[0], v[1], v[2])
	})},
	"clear-circle": {"X Y RADIUS", 3, 3, numeric(func(dev proto.Control, v []int) error {
		return dev.ClearCircle(v[0], v[1], v[2])
	})},
	"block": {"X1 Y1 X2 Y2", 4, 4, numeric(func(dev proto.Control, v []int) error {
		return dev.ClearBlock(v[0], v[1], v[2], v[3])
	})},
	"image": {"PATH|URL X1 Y1 X2 Y2 [invert]", 5, 6, func(dev proto.Control, load loader, args []string) error {
		v, err := ints(args[1:5])
		if err != nil {
			return err
		}
		invert := len(args) > 5 && args[5] == "invert"
		img, err := load(args[0])
		if err != nil {
			return err
		}
		return dev.RenderImage(img, image.Rect(v[0], v[1], v[2], v[3]), invert)
	}},
}

func run(dev proto.Control, load loader, args []string) error {
	if len(args) == 0 {
		return errors.New("no command given")
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return errors.Errorf("unknown command %q", args[0])
	}

	rest := args[1:]
	if len(rest) < cmd.min || len(rest) > cmd.max {
		return errors.Errorf("usage: %s %s", args[0], cmd.usage)
	}

	return cmd.run(dev, load, rest)
}

func usage() string {
	names := lo.Keys(commands)
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString("  ")
		b.WriteString(strings.TrimSpace(name + " " + commands[name].usage))
		b.WriteString("\n")
	}
	return b.String()
}
