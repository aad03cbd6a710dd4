package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/cchooks/command"
	"github.com/lixenwraith/cchooks/debug"
	"github.com/lixenwraith/cchooks/dispatch"
	"github.com/lixenwraith/cchooks/event"
	"github.com/lixenwraith/cchooks/overlay"
	"github.com/lixenwraith/cchooks/session"
	"github.com/lixenwraith/cchooks/world"
)

var errNoStorage = errors.New("no storage dir: pass --storage or set storage.dir")

func newChatCmd() *cobra.Command {
	var storage string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "chat TEXT",
		Short: "Run a chat message through the command interceptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if storage == "" {
				storage = cfg.Storage.Dir
			}
			if storage == "" {
				return errNoStorage
			}

			var opener command.Opener
			platform := command.NewPlatformOpener(logger)
			if dryRun {
				opener = command.OpenerFunc(func(path string) {
					fmt.Fprintf(cmd.OutOrStdout(), "open %s\n", path)
				})
			} else {
				opener = platform
			}

			d, err := newDispatcher(&cliHost{}, dispatch.WithOpener(opener))
			if err != nil {
				return err
			}
			d.Attach(session.New(storage, session.WithLogger(logger)))
			defer d.OnWorldUnload()

			if d.Dispatch(event.ChatMessage{Text: args[0]}) {
				fmt.Fprintln(cmd.OutOrStdout(), "consumed")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "passed")
			}
			platform.Wait()
			return nil
		},
	}
	cmd.Flags().StringVar(&storage, "storage", "", "local server storage root")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the folder instead of opening it")
	return cmd
}

// targetFlags describe the block entity under the crosshair
type targetFlags struct {
	monitor string
	turtle  int
	left    string
	right   string
	block   string
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.monitor, "monitor", "", "target a monitor block: x,y,width,height")
	cmd.Flags().IntVar(&f.turtle, "turtle", -1, "target a turtle with this computer id")
	cmd.Flags().StringVar(&f.left, "left", "", "left turtle upgrade id")
	cmd.Flags().StringVar(&f.right, "right", "", "right turtle upgrade id")
	cmd.Flags().StringVar(&f.block, "block", "", "target another block entity of this kind")
	cmd.MarkFlagsMutuallyExclusive("monitor", "turtle", "block")
}

var targetPos = world.BlockPos{X: 0, Y: 64, Z: 0}

// host builds a cliHost whose crosshair rests on the described entity
func (f *targetFlags) host() (*cliHost, error) {
	h := &cliHost{overlay: true, level: world.MapLevel{}}

	switch {
	case f.monitor != "":
		m, err := parseMonitor(f.monitor)
		if err != nil {
			return nil, err
		}
		h.level.Put(m)
	case f.turtle >= 0:
		t := &world.Turtle{At: targetPos, ComputerID: f.turtle}
		if f.left != "" {
			t.SetUpgrade(world.Left, &world.Upgrade{ID: f.left})
		}
		if f.right != "" {
			t.SetUpgrade(world.Right, &world.Upgrade{ID: f.right})
		}
		h.level.Put(t)
	case f.block != "":
		h.level.Put(&world.Generic{At: targetPos, Kind: f.block})
	default:
		return h, nil
	}

	h.hit, h.hasHit = world.BlockHit(targetPos), true
	return h, nil
}

func parseMonitor(s string) (*world.Monitor, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("monitor %q: want x,y,width,height", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("monitor %q: %w", s, err)
		}
		v[i] = n
	}
	return &world.Monitor{At: targetPos, XIndex: v[0], YIndex: v[1], Width: v[2], Height: v[3]}, nil
}

// collectLines returns the overlay lines for h and reports the highlight decision
func collectLines(h *cliHost) ([]string, bool, error) {
	d, err := newDispatcher(h, dispatch.WithOpener(command.OpenerFunc(func(string) {})))
	if err != nil {
		return nil, false, err
	}
	drawn := h.hasHit && d.DrawHighlight(event.DrawHighlight{Hit: h.hit})
	return debug.NewAggregator(h).Lines(), drawn, nil
}

func newDebugCmd() *cobra.Command {
	var target targetFlags
	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Print the debug overlay lines for a target block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := target.host()
			if err != nil {
				return err
			}
			lines, _, err := collectLines(h)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	target.register(cmd)
	return cmd
}

func newOverlayCmd() *cobra.Command {
	var target targetFlags
	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Show the debug overlay for a target block in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := target.host()
			if err != nil {
				return err
			}
			lines, drawn, err := collectLines(h)
			if err != nil {
				return err
			}
			lines = append(lines, "", fmt.Sprintf("Highlight drawn: %t", drawn), "Press any key to exit")

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			panel := overlay.NewPanel()
			for {
				screen.Clear()
				panel.Draw(screen, lines)
				screen.Show()

				switch screen.PollEvent().(type) {
				case *tcell.EventKey:
					return nil
				case *tcell.EventResize:
					screen.Sync()
				}
			}
		},
	}
	target.register(cmd)
	return cmd
}

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List the host event types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, et := range event.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), event.GetEventName(et))
			}
			return nil
		},
	}
}
