package domain

import (
	"fmt"
	"io"
	"sync"
)

// The position shared by every Point. It starts at 0,0.
var (
	posMu sync.RWMutex
	posX  int
	posY  int
)

// Point is a view onto the process-wide position. All Point values observe
// and mutate the same coordinates.
type Point struct{}

func (Point) X() int {
	posMu.RLock()
	defer posMu.RUnlock()
	return posX
}

func (Point) Y() int {
	posMu.RLock()
	defer posMu.RUnlock()
	return posY
}

func (Point) SetX(x int) {
	posMu.Lock()
	posX = x
	posMu.Unlock()
}

func (Point) SetY(y int) {
	posMu.Lock()
	posY = y
	posMu.Unlock()
}

// Set updates both coordinates atomically.
func (Point) Set(x, y int) {
	posMu.Lock()
	posX, posY = x, y
	posMu.Unlock()
}

// String renders the position as "x,y".
func (Point) String() string {
	posMu.RLock()
	defer posMu.RUnlock()
	return fmt.Sprintf("%d,%d", posX, posY)
}

// Print writes the position followed by a newline.
func (p Point) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.String())
	return err
}
