package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/achilleasa/octocam/input"
	"github.com/achilleasa/octocam/metrics"
	"github.com/achilleasa/octocam/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Fly the camera through the scene following an input script and report
// per-frame culling statistics.
func Fly(ctx *cli.Context) error {
	w, err := setupWorld(ctx)
	if err != nil {
		return err
	}

	script, err := input.ParseScript(ctx.String("script"))
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr := ctx.String("metrics-addr"); addr != "" {
		go func() {
			if err := metrics.ListenAndServe(runCtx, addr); err != nil {
				logger.Errorf("metrics server: %v", err)
			}
		}()
	}

	width, height := w.camera.Viewport()
	r, err := renderer.NewHeadless(w.scene, w.camera, renderer.Options{
		FrameW:           uint32(width),
		FrameH:           uint32(height),
		Frames:           ctx.Int("frames"),
		Script:           script,
		MoveSpeed:        w.cfg.Camera.MoveSpeed,
		MouseSensitivity: w.cfg.Camera.MouseSensitivity,
		FrameInterval:    ctx.Duration("interval"),
		Labels:           ctx.Bool("labels"),
		Views:            w.views,
		Observer:         metrics.Recorder{},
	})
	if err != nil {
		return err
	}
	defer r.Close()

	err = r.Render(runCtx)
	displayFrameStats(ctx, r.History())
	return err
}

func displayFrameStats(ctx *cli.Context, frames []renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Position", "Yaw", "Pitch", "View", "Visible", "Tested", "Culled", "Cull time"})

	var total, cullTotal time.Duration
	for _, frame := range frames {
		total += frame.RenderTime
		for _, view := range frame.Views {
			cullTotal += view.CullTime
			table.Append([]string{
				fmt.Sprintf("%d", frame.Frame),
				fmtVec3(frame.Position),
				fmt.Sprintf("%3.1f", frame.Yaw),
				fmt.Sprintf("%3.1f", frame.Pitch),
				view.Id,
				fmt.Sprintf("%d", view.Visible),
				fmt.Sprintf("%d", view.Tested),
				fmt.Sprintf("%d", view.RegionsCulled),
				view.CullTime.String(),
			})
		}
		if len(frame.Labels) != 0 {
			labels := make([]string, 0, len(frame.Labels))
			for _, label := range frame.Labels {
				labels = append(labels, fmt.Sprintf("%s@(%.0f,%.0f)", label.Name, label.X, label.Y))
			}
			logger.Infof("frame %d labels: %s", frame.Frame, strings.Join(labels, " "))
		}
	}
	table.SetFooter([]string{"", "", "", "", "", "", "", "TOTAL", cullTotal.String()})
	table.Render()

	logger.Noticef("rendered %d frame(s) in %s", len(frames), total)
	fmt.Fprint(ctx.App.Writer, buf.String())
}
