package entity

import (
	"image"
	"image/color"
)

/* 17-point keypoint layout (COCO / Ultralytics ordering)
0: Nose
1: Left Eye
2: Right Eye
3: Left Ear
4: Right Ear
5: Left Shoulder
6: Right Shoulder
7: Left Elbow
8: Right Elbow
9: Left Wrist
10: Right Wrist
11: Left Hip
12: Right Hip
13: Left Knee
14: Right Knee
15: Left Ankle
16: Right Ankle
*/

// skeleton pairs keypoint indices to draw limb lines between. Indices are
// 1-based over the 17-point layout above, so (16,14) connects the right
// ankle to the right knee. A label file with a different keypoint count or
// ordering will produce wrong or missing lines; there is no detection of
// that here.
var skeleton = [19][2]int{
	{16, 14}, {14, 12}, {17, 15}, {15, 13}, {12, 13}, {6, 12}, {7, 13},
	{6, 7}, {6, 8}, {7, 9}, {8, 10}, {9, 11}, {2, 3}, {1, 2}, {1, 3},
	{2, 4}, {3, 5}, {4, 6}, {5, 7},
}

var (
	green  = color.RGBA{R: 0, G: 255, B: 0}
	orange = color.RGBA{R: 0, G: 128, B: 255}
)

// limbColors assigns a color to each skeleton edge, index-aligned with
// the skeleton table.
var limbColors = [19]color.RGBA{
	green, green, orange, orange, orange,
	green, orange, orange, green, orange,
	green, orange, orange, orange, orange,
	orange, orange, green, orange,
}

var (
	// KeypointColor is used for the filled joint markers.
	KeypointColor = color.RGBA{R: 255, G: 0, B: 0}
	// BoxColor is used for bounding box outlines.
	BoxColor = color.RGBA{R: 0, G: 0, B: 255}
)

// Edge is one drawable skeleton connection in pixel space.
type Edge struct {
	P1    image.Point
	P2    image.Point
	Color color.RGBA
}

// SkeletonEdges maps the fixed edge table onto a parsed keypoint list given
// in pixel coordinates. An edge is included only when both of its indices
// fall inside the list and neither endpoint sits at the origin on either
// axis, which the detector uses to mean "not found".
func SkeletonEdges(points []image.Point) []Edge {
	var edges []Edge
	for i, pair := range skeleton {
		p1Idx, p2Idx := pair[0]-1, pair[1]-1
		if p1Idx >= len(points) || p2Idx >= len(points) {
			continue
		}
		p1, p2 := points[p1Idx], points[p2Idx]
		if p1.X <= 0 || p1.Y <= 0 || p2.X <= 0 || p2.Y <= 0 {
			continue
		}
		edges = append(edges, Edge{P1: p1, P2: p2, Color: limbColors[i]})
	}
	return edges
}
