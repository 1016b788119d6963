package main

import (
	"fmt"

	"github.com/pterm/pterm"
)

const emptySlot = "<none>"

// exportTree turns a structural export into a pterm tree. A node with a
// single child still shows the empty slot so left and right stay apart.
func exportTree(dict map[string]any) pterm.TreeNode {
	node := pterm.TreeNode{
		Text: fmt.Sprintf("%v (depth %v)", dict["value"], dict["depth"]),
	}

	left, _ := dict["left"].(map[string]any)
	right, _ := dict["right"].(map[string]any)
	if left == nil && right == nil {
		return node
	}

	node.Children = []pterm.TreeNode{
		exportSlot("L", left),
		exportSlot("R", right),
	}
	return node
}

func exportSlot(label string, dict map[string]any) pterm.TreeNode {
	if dict == nil {
		return pterm.TreeNode{Text: label + ": " + emptySlot}
	}
	child := exportTree(dict)
	child.Text = label + ": " + child.Text
	return child
}
