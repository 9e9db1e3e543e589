package vision

import (
	"math"
)

// Block matching defaults. The cost of a search is
// O(width*height*radius^2); both knobs stay small and bounded.
const (
	DefaultBlockSize    = 16
	DefaultSearchRadius = 8
)

// BlockMatcher estimates inter-frame displacement by searching, for each
// pixel block of the first frame, the best-matching block position in the
// second frame within a bounded radius.
type BlockMatcher struct {
	blockSize    int
	searchRadius int
}

// NewBlockMatcher creates a block matcher with the default 16x16 blocks
// and 8-pixel search radius
func NewBlockMatcher() *BlockMatcher {
	return NewBlockMatcherWithParams(DefaultBlockSize, DefaultSearchRadius)
}

// NewBlockMatcherWithParams creates a block matcher with custom block
// size and search radius
func NewBlockMatcherWithParams(blockSize, searchRadius int) *BlockMatcher {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	if searchRadius <= 0 {
		searchRadius = DefaultSearchRadius
	}
	return &BlockMatcher{
		blockSize:    blockSize,
		searchRadius: searchRadius,
	}
}

// EstimateDisplacement returns the average block displacement (dx, dy) in
// pixels between two frames. Each full block of the first frame is
// located in the second by minimal mean absolute difference over an
// 8-pixel (by default) search window in both axes. Frames too small to
// hold a single block, or with mismatched dimensions, yield (0, 0).
func (bm *BlockMatcher) EstimateDisplacement(prev, next *Frame) (dx, dy float64) {
	if prev == nil || next == nil || !prev.SameSize(next) {
		return 0.0, 0.0
	}
	if prev.Width < bm.blockSize || prev.Height < bm.blockSize {
		return 0.0, 0.0
	}

	sumDX := 0.0
	sumDY := 0.0
	blocks := 0

	for by := 0; by+bm.blockSize <= prev.Height; by += bm.blockSize {
		for bx := 0; bx+bm.blockSize <= prev.Width; bx += bm.blockSize {
			bestDX, bestDY := bm.matchBlock(prev, next, bx, by)
			sumDX += float64(bestDX)
			sumDY += float64(bestDY)
			blocks++
		}
	}

	if blocks == 0 {
		return 0.0, 0.0
	}

	return sumDX / float64(blocks), sumDY / float64(blocks)
}

// matchBlock finds the displacement with minimal mean absolute difference
// for one block. Candidate positions that would leave the frame are
// skipped. The zero displacement is evaluated first so that a stationary
// block ties to (0, 0) rather than to an arbitrary equal-cost candidate.
func (bm *BlockMatcher) matchBlock(prev, next *Frame, bx, by int) (int, int) {
	bestCost := bm.blockCost(prev, next, bx, by, bx, by, math.Inf(1))
	bestDX, bestDY := 0, 0

	for oy := -bm.searchRadius; oy <= bm.searchRadius; oy++ {
		ny := by + oy
		if ny < 0 || ny+bm.blockSize > next.Height {
			continue
		}
		for ox := -bm.searchRadius; ox <= bm.searchRadius; ox++ {
			nx := bx + ox
			if nx < 0 || nx+bm.blockSize > next.Width {
				continue
			}

			cost := bm.blockCost(prev, next, bx, by, nx, ny, bestCost)
			if cost < bestCost {
				bestCost = cost
				bestDX, bestDY = ox, oy
			}
		}
	}

	return bestDX, bestDY
}

// blockCost computes the mean absolute RGB difference between a block of
// prev at (bx, by) and a block of next at (nx, ny). Accumulation stops
// early once the running sum cannot beat the current best.
func (bm *BlockMatcher) blockCost(prev, next *Frame, bx, by, nx, ny int, bestCost float64) float64 {
	pixels := float64(bm.blockSize * bm.blockSize * 3)
	bestSum := bestCost * pixels

	sum := 0.0
	for y := 0; y < bm.blockSize; y++ {
		pIdx := ((by+y)*prev.Width + bx) * 4
		nIdx := ((ny+y)*next.Width + nx) * 4
		for x := 0; x < bm.blockSize; x++ {
			sum += math.Abs(float64(prev.Pixels[pIdx]) - float64(next.Pixels[nIdx]))
			sum += math.Abs(float64(prev.Pixels[pIdx+1]) - float64(next.Pixels[nIdx+1]))
			sum += math.Abs(float64(prev.Pixels[pIdx+2]) - float64(next.Pixels[nIdx+2]))
			pIdx += 4
			nIdx += 4
		}
		if sum >= bestSum {
			return math.Inf(1)
		}
	}

	return sum / pixels
}
