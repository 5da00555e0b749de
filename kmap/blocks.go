package kmap

// conn4 are the orthogonal neighbour offsets: W, E, N, S.
var conn4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Blocks splits a group into maximal 4-connected islands of cells.
// Adjacency is plain grid adjacency: cells on opposite map edges are NOT
// joined here, wraparound is the job of Classify.
//
// Seeds are taken in group order and each island lists its cells in BFS
// order, so the output depends only on the input order. Duplicate indices
// collapse into one cell.
//
// Time:   O(|G|·4).
// Memory: O(|G|) for the coordinate table and output.
func Blocks(group []int) []Block {
	cells := make(map[Coord]int, len(group))
	for _, i := range group {
		x, y := IndexToCoordinate(i)
		cells[Coord{X: x, Y: y}] = i
	}

	var blocks []Block
	for _, seed := range group {
		x0, y0 := IndexToCoordinate(seed)
		c0 := Coord{X: x0, Y: y0}
		if _, ok := cells[c0]; !ok {
			continue // already in an island
		}
		delete(cells, c0)

		// BFS to collect the island
		queue := []Coord{c0}
		block := Block{{Index: seed, X: x0, Y: y0}}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range conn4 {
				v := Coord{X: u.X + d[0], Y: u.Y + d[1]}
				idx, ok := cells[v]
				if !ok {
					continue
				}
				delete(cells, v)
				queue = append(queue, v)
				block = append(block, Cell{Index: idx, X: v.X, Y: v.Y})
			}
		}
		blocks = append(blocks, block)
	}
	return blocks
}
