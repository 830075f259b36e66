package entity

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
)

// Box is a bounding box in YOLO format: center and size normalized to [0,1]
// relative to the image dimensions.
type Box struct {
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
}

// Corners denormalizes the box against the given image dimensions and
// returns the top-left and bottom-right pixel corners, truncated to ints.
func (b Box) Corners(imgW, imgH int) (image.Point, image.Point) {
	cx := b.CenterX * float64(imgW)
	cy := b.CenterY * float64(imgH)
	w := b.Width * float64(imgW)
	h := b.Height * float64(imgH)

	tl := image.Pt(int(cx-w/2), int(cy-h/2))
	br := image.Pt(int(cx+w/2), int(cy+h/2))
	return tl, br
}

// Keypoint is a single landmark location normalized to [0,1]. A keypoint at
// the origin means the detector did not find it.
type Keypoint struct {
	X float64
	Y float64
}

// Pixel denormalizes the keypoint against the given image dimensions,
// truncating to ints.
func (k Keypoint) Pixel(imgW, imgH int) image.Point {
	return image.Pt(int(k.X*float64(imgW)), int(k.Y*float64(imgH)))
}

// Object is one line of a YOLO pose label file: a class, a bounding box and
// an optional list of keypoints.
type Object struct {
	ClassID   int
	Box       Box
	Keypoints []Keypoint
}

// ParseObjects reads a label file, one object per line:
//
//	class_id x_center y_center width height [kp1_x kp1_y ... kp17_x kp17_y]
//
// Lines with fewer than 5 tokens or with non-numeric fields are skipped and
// counted; an unpaired trailing keypoint token is dropped. Parsing one line
// never affects the others.
func ParseObjects(r io.Reader) (objects []Object, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		obj, perr := parseLine(fields)
		if perr != nil {
			skipped++
			continue
		}
		objects = append(objects, obj)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read label file: %w", err)
	}
	return objects, skipped, nil
}

func parseLine(fields []string) (Object, error) {
	if len(fields) < 5 {
		return Object{}, fmt.Errorf("expected at least 5 fields, got %d", len(fields))
	}

	classID, err := strconv.Atoi(fields[0])
	if err != nil {
		return Object{}, fmt.Errorf("class id %q: %w", fields[0], err)
	}

	var geom [4]float64
	for i, tok := range fields[1:5] {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Object{}, fmt.Errorf("box field %q: %w", tok, err)
		}
		geom[i] = v
	}

	obj := Object{
		ClassID: classID,
		Box: Box{
			CenterX: geom[0],
			CenterY: geom[1],
			Width:   geom[2],
			Height:  geom[3],
		},
	}

	kpFields := fields[5:]
	for i := 0; i+1 < len(kpFields); i += 2 {
		x, err := strconv.ParseFloat(kpFields[i], 64)
		if err != nil {
			return Object{}, fmt.Errorf("keypoint x %q: %w", kpFields[i], err)
		}
		y, err := strconv.ParseFloat(kpFields[i+1], 64)
		if err != nil {
			return Object{}, fmt.Errorf("keypoint y %q: %w", kpFields[i+1], err)
		}
		obj.Keypoints = append(obj.Keypoints, Keypoint{X: x, Y: y})
	}

	return obj, nil
}
