package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"

	"github.com/e11jah/bintree"
)

type Args struct {
	Debug    bool
	Sort     bool
	SetLeft  string
	SetRight string
	Values   []string
}

func parseArgs() *Args {
	args := new(Args)

	flag.BoolVar(&args.Debug, "debug", false, "enable debug output")
	flag.BoolVar(&args.Sort, "sort", true, "sort values before building the tree")
	flag.StringVar(&args.SetLeft, "set-left", "", "assign this value to the root's left child after building")
	flag.StringVar(&args.SetRight, "set-right", "", "assign this value to the root's right child after building")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] value...\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	args.Values = flag.Args()
	return args
}

func main() {
	args := parseArgs()

	if args.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(args); err != nil {
		log.WithError(err).Error("bintree failed")
		os.Exit(1)
	}
}

func run(args *Args) error {
	if len(args.Values) == 0 {
		flag.Usage()
		return fmt.Errorf("no values given")
	}

	values := append([]string(nil), args.Values...)
	if args.Sort {
		sort.Strings(values)
	}

	tree := buildBalanced(values)
	log.WithField("size", len(values)).Debug("tree built")

	if args.SetLeft != "" {
		tree.SetLeft(args.SetLeft)
		log.WithField("value", args.SetLeft).Debug("left child assigned")
	}
	if args.SetRight != "" {
		tree.SetRight(args.SetRight)
		log.WithField("value", args.SetRight).Debug("right child assigned")
	}
	log.Debug(tree.String())

	if err := pterm.DefaultTree.WithRoot(exportTree(tree.AsDict())).Render(); err != nil {
		return fmt.Errorf("render tree: %w", err)
	}

	items := make([]pterm.BulletListItem, 0, len(values))
	for v := range tree.All() {
		items = append(items, pterm.BulletListItem{Level: 0, Text: v})
	}
	pterm.DefaultSection.Println("in-order")
	if err := pterm.DefaultBulletList.WithItems(items).Render(); err != nil {
		return fmt.Errorf("render values: %w", err)
	}
	return nil
}

// buildBalanced roots each subtree at the middle element, so a sorted input
// comes back unchanged from an in-order walk.
func buildBalanced(values []string) *bintree.TreeNode[string] {
	if len(values) == 0 {
		return nil
	}
	mid := len(values) / 2
	return bintree.New(values[mid], buildBalanced(values[:mid]), buildBalanced(values[mid+1:]))
}
