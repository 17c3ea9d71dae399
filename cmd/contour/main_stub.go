//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The windowed build of mad-contour requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/contour`, or try ./cmd/contour-term or ./cmd/contour-snapshot.")
	os.Exit(2)
}
