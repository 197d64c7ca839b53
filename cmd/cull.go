package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/octocam/camera"
	"github.com/achilleasa/octocam/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli"
)

type visibleObject struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Anchor [3]float32 `json:"anchor"`
	Radius float32    `json:"radius,omitempty"`

	// Screen position of the anchor; omitted for spheres whose anchor is
	// off-screen.
	Screen *[2]float32 `json:"screen,omitempty"`
}

type cullReport struct {
	View          string          `json:"view"`
	Visible       []visibleObject `json:"visible"`
	Total         int             `json:"total"`
	Tested        int             `json:"tested"`
	NodesVisited  int             `json:"nodes_visited"`
	RegionsCulled int             `json:"regions_culled"`
	CullTimeNanos int64           `json:"cull_time_ns"`
}

// Cull the scene from the camera (and any configured lights) and list the
// visible objects.
func Cull(ctx *cli.Context) error {
	w, err := setupWorld(ctx)
	if err != nil {
		return err
	}

	width, height := w.camera.Viewport()
	reports := []cullReport{
		buildCullReport("camera", w.camera, w.scene, width, height),
	}
	for _, view := range w.views {
		reports = append(reports, buildCullReport(view.Id, view.Source, w.scene, width, height))
	}

	if ctx.Bool("json") {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.App.Writer, string(data))
		return err
	}

	for _, report := range reports {
		displayCullReport(ctx, report)
	}
	return nil
}

func buildCullReport(id string, view camera.ViewSource, sc *scene.Scene, width, height int) cullReport {
	res := sc.Cull(view)
	report := cullReport{
		View:          id,
		Visible:       make([]visibleObject, 0, len(res.Visible)),
		Total:         sc.Len(),
		Tested:        res.ObjectsTested,
		NodesVisited:  res.NodesVisited,
		RegionsCulled: res.RegionsCulled,
		CullTimeNanos: res.Duration.Nanoseconds(),
	}

	for _, obj := range res.Visible {
		entry := visibleObject{
			ID:     obj.ID.String(),
			Name:   obj.Name,
			Anchor: obj.Anchor,
			Radius: obj.Radius,
		}
		if x, y, ok := camera.ProjectToScreen(view, obj.Anchor, width, height); ok {
			entry.Screen = &[2]float32{x, y}
		}
		report.Visible = append(report.Visible, entry)
	}
	return report
}

func displayCullReport(ctx *cli.Context, report cullReport) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "ID", "Anchor", "Radius", "Screen"})
	for _, obj := range report.Visible {
		screen := "-"
		if obj.Screen != nil {
			screen = fmt.Sprintf("(%.1f, %.1f)", obj.Screen[0], obj.Screen[1])
		}
		table.Append([]string{
			obj.Name,
			obj.ID,
			fmtVec3(obj.Anchor),
			fmt.Sprintf("%3.3f", obj.Radius),
			screen,
		})
	}
	table.SetFooter([]string{
		report.View,
		fmt.Sprintf("%d/%d visible", len(report.Visible), report.Total),
		fmt.Sprintf("%d tested", report.Tested),
		fmt.Sprintf("%d culled", report.RegionsCulled),
		fmt.Sprintf("%d nodes", report.NodesVisited),
	})
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
}
