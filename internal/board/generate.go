package board

// Generate places the mines, keeping the 3x3 block around safe clear, and
// derives every cell's neighbor count. It runs once; later calls do nothing.
//
// If fewer cells are eligible than mines were requested, the mine count is
// reduced to the number of eligible cells.
func (b *Board) Generate(safe Position) {
	if b.state != StateInit {
		return
	}

	zone := make(map[int]bool, 9)
	b.eachAround(safe, func(p Position) {
		zone[b.Index(p)] = true
	})

	eligible := make([]int, 0, len(b.cells))
	for i := range b.cells {
		if !zone[i] {
			eligible = append(eligible, i)
		}
	}

	if b.mineCount > len(eligible) {
		b.mineCount = len(eligible)
	}

	// Partial Fisher-Yates: the first mineCount slots end up a uniform
	// sample without replacement.
	for i := range b.mineCount {
		j := i + b.rng.Intn(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
		b.cells[eligible[i]].Mine = true
	}

	b.deriveCounts()
	b.state = StatePlaying
}

// Plant lays out mines at exactly the given positions instead of choosing
// them at random, then derives neighbor counts. Duplicates are ignored and
// the mine count becomes the number of distinct positions.
func (b *Board) Plant(mines []Position) {
	if b.state != StateInit {
		return
	}

	placed := 0
	for _, pos := range mines {
		cell := &b.cells[b.Index(pos)]
		if !cell.Mine {
			cell.Mine = true
			placed++
		}
	}

	b.mineCount = placed
	b.deriveCounts()
	b.state = StatePlaying
}

// deriveCounts fills in Neighbors for every cell from the mine layout.
func (b *Board) deriveCounts() {
	for i := range b.cells {
		pos := b.PositionOf(i)
		count := 0
		b.eachAround(pos, func(p Position) {
			if p != pos && b.cells[b.Index(p)].Mine {
				count++
			}
		})
		b.cells[i].Neighbors = count
	}
}
