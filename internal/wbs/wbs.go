// Package wbs builds a work breakdown structure from scheduled
// activities, grouping them by CSI division code and rolling up
// durations and counts.
package wbs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Haston00/DABO/internal/activity"
)

// Node is one level of the breakdown: the project root or a division.
// Rollups are computed on read, never cached, so a node stays correct
// however the tree was assembled.
type Node struct {
	Code       string              `json:"code"`
	Name       string              `json:"name"`
	Level      int                 `json:"level"`
	Activities []activity.Activity `json:"activities,omitempty"`
	Children   []*Node             `json:"children,omitempty"`
}

// TotalDuration sums activity durations across this node and its
// children.
func (n *Node) TotalDuration() int {
	total := 0
	for _, a := range n.Activities {
		total += a.Duration
	}
	for _, c := range n.Children {
		total += c.TotalDuration()
	}
	return total
}

// ActivityCount counts activities across this node and its children.
func (n *Node) ActivityCount() int {
	count := len(n.Activities)
	for _, c := range n.Children {
		count += c.ActivityCount()
	}
	return count
}

// divisionNames maps CSI division codes to display names.
var divisionNames = map[string]string{
	"01": "General Requirements",
	"02": "Site Construction",
	"03": "Concrete",
	"04": "Masonry",
	"05": "Metals / Structural Steel",
	"06": "Wood & Plastics",
	"07": "Thermal & Moisture Protection",
	"08": "Openings",
	"09": "Finishes",
	"10": "Specialties",
	"11": "Equipment",
	"12": "Furnishings",
	"13": "Special Construction",
	"14": "Conveying Equipment",
	"15": "Mechanical",
	"16": "Electrical",
}

// Build groups activities under a project root by their WBS division
// code. Activities without a code land in division 01. Division nodes
// are sorted by code so the tree is stable for any input order.
func Build(acts []activity.Activity, projectName string) *Node {
	root := &Node{Code: "00", Name: projectName}

	byDiv := make(map[string][]activity.Activity)
	for _, a := range acts {
		div := a.WBS
		if div == "" {
			div = "01"
		}
		byDiv[div] = append(byDiv[div], a)
	}

	codes := make([]string, 0, len(byDiv))
	for code := range byDiv {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		name, ok := divisionNames[code]
		if !ok {
			name = "Division " + code
		}
		root.Children = append(root.Children, &Node{
			Code:       code,
			Name:       name,
			Level:      1,
			Activities: byDiv[code],
		})
	}
	return root
}

// Text renders the tree as indented lines with per-node rollups.
func Text(n *Node) string {
	var b strings.Builder
	writeNode(&b, n, 0)
	return strings.TrimRight(b.String(), "\n")
}

func writeNode(b *strings.Builder, n *Node, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(b, "%s%s %s (%d activities, %d days)\n",
		prefix, n.Code, n.Name, n.ActivityCount(), n.TotalDuration())
	for _, a := range n.Activities {
		fmt.Fprintf(b, "%s  %s %s (%dd)\n", prefix, a.ID, a.Name, a.Duration)
	}
	for _, c := range n.Children {
		writeNode(b, c, indent+1)
	}
}
