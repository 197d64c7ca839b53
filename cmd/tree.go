package cmd

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/achilleasa/octocam/octree"
	"github.com/achilleasa/octocam/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Dump the octree nodes of the scene ordered by location code.
func Tree(ctx *cli.Context) error {
	w, err := setupWorld(ctx)
	if err != nil {
		return err
	}

	tree := w.scene.Tree()
	var nodes []*octree.Node[*scene.Object]
	tree.LinearProcess(func(n *octree.Node[*scene.Object]) {
		nodes = append(nodes, n)
	}, ctx.Bool("leaves"))
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Code() < nodes[j].Code() })

	if limit := ctx.Int("limit"); limit > 0 && len(nodes) > limit {
		nodes = nodes[:limit]
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Code", "Depth", "Children", "Min", "Max", "Items"})
	for _, n := range nodes {
		min, max := tree.NodeBounds(n.Code())
		items := "-"
		if leaf := n.Leaf(); leaf != nil {
			items = fmt.Sprintf("%d", len(leaf.Items))
		}
		table.Append([]string{
			n.Code().String(),
			fmt.Sprintf("%d", tree.NodeDepth(n)),
			fmt.Sprintf("%08b", n.ChildMask()),
			fmtVec3(min),
			fmtVec3(max),
			items,
		})
	}

	stats := tree.Stats()
	table.SetFooter([]string{
		fmt.Sprintf("%d nodes", stats.Nodes),
		fmt.Sprintf("max %d", stats.MaxDepth),
		"",
		"",
		fmt.Sprintf("%d leaves", stats.Leaves),
		fmt.Sprintf("%d items", stats.Items),
	})
	table.Render()

	fmt.Fprint(ctx.App.Writer, buf.String())
	return nil
}
