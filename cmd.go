package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/traffictimer/intersection-sim/entity/feed"
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
	"github.com/traffictimer/intersection-sim/task"
)

var phaseColors = map[trafficlight.Phase]*color.Color{
	trafficlight.Red:    color.New(color.FgRed, color.Bold),
	trafficlight.Yellow: color.New(color.FgYellow, color.Bold),
	trafficlight.Green:  color.New(color.FgGreen, color.Bold),
}

func phaseString(p trafficlight.Phase) string {
	return phaseColors[p].Sprint(strings.ToUpper(p.String()))
}

// formatStatus 单行状态：每个信号灯的灯色与剩余秒数
func formatStatus(step int32, clock string, snap *trafficlight.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s step %-5d", clock, step)
	for _, l := range snap.Lights {
		fmt.Fprintf(&b, " | #%d %s %2ds", l.ID, phaseString(l.Phase), l.SecondsRemaining)
	}
	fmt.Fprintf(&b, " | next dir %d", snap.NextDirection())
	return b.String()
}

func printForecast(w io.Writer, t *task.Context) {
	j := t.Junction()
	snap := j.Snapshot()
	fmt.Fprintf(w, "Forecast at %s (red countdown %ds)\n", t.Clock(), snap.RedCountdown)
	for _, p := range snap.Forecast() {
		d := j.Registry().MustGet(p.Direction)
		fmt.Fprintf(w, "  +%3d min  %s\n", p.OffsetMinutes, color.GreenString("%s", d))
	}
}

func printLight(w io.Writer, t *task.Context, f *feed.Manager) error {
	l, ok := f.Selected()
	if !ok {
		return fmt.Errorf("no light selected")
	}
	d := t.Junction().Registry().MustGet(l.Direction)
	fmt.Fprintf(w, "%s\n", color.New(color.Bold).Sprint(l.Name))
	fmt.Fprintf(w, "  direction  %s\n", d)
	fmt.Fprintf(w, "  phase      %s\n", phaseString(l.Phase))
	fmt.Fprintf(w, "  remaining  %ds\n", l.SecondsRemaining)
	fmt.Fprintf(w, "  speed      %d km/h\n", f.Speed())
	for _, n := range f.Notifications() {
		fmt.Fprintf(w, "  [%s] %s\n", n.Time, n.Message)
	}
	return nil
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the signal cycle in real time",
		Long: `Drive the tick loop at the configured wall-clock interval and print one
status line per tick. Stops after control.step.total steps, or on Ctrl-C when
the total is 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			t, err := newTask()
			if err != nil {
				return err
			}
			defer t.Close()
			out := cmd.OutOrStdout()
			if !quiet {
				t.OnStep(func(step int32, snap *trafficlight.Snapshot) {
					fmt.Fprintln(out, formatStatus(step, t.Clock().String(), snap))
				})
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			t.Run(ctx)
			return nil
		},
	}
	cmd.Flags().BoolP("quiet", "q", false, "Do not print a status line per tick")
	return cmd
}

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Print the green direction forecast after advancing N ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt32("steps")
			t, err := newTask()
			if err != nil {
				return err
			}
			for range steps {
				t.Step()
			}
			printForecast(cmd.OutOrStdout(), t)
			return nil
		},
	}
	cmd.Flags().Int32P("steps", "n", 0, "Number of ticks to advance before forecasting")
	return cmd
}

func lightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "light <id>",
		Short: "Show the detail view of one signal light after advancing N ticks",
		Long: `Select a light, advance N ticks and print its phase, remaining time, the
mock speed and the most recent next-green notifications.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid light id %q: %w", args[0], err)
			}
			steps, _ := cmd.Flags().GetInt32("steps")
			t, err := newTask()
			if err != nil {
				return err
			}
			f := t.Feed()
			if _, err := f.Select(int32(id)); err != nil {
				return err
			}
			for range steps {
				t.Step()
			}
			return printLight(cmd.OutOrStdout(), t, f)
		},
	}
	cmd.Flags().Int32P("steps", "n", 0, "Number of ticks to advance before showing the light")
	return cmd
}
