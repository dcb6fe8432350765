package curl

// truthTable is indexed by a + 4*b + 5 where a and b are the two trits combined by the permutation.
var truthTable = [11]int8{1, 0, -1, 2, 1, -1, 0, 2, -1, 1, 0}

// transform runs the Curl permutation on the state.
func transform(state *[StateSize]int8, rounds Rounds) {
	var scratchpad [StateSize]int8
	scratchpadIndex := 0
	for round := 0; round < int(rounds); round++ {
		scratchpad = *state
		for stateIndex := 0; stateIndex < StateSize; stateIndex++ {
			prevScratchpadIndex := scratchpadIndex
			if scratchpadIndex < 365 {
				scratchpadIndex += 364
			} else {
				scratchpadIndex -= 365
			}
			state[stateIndex] = truthTable[scratchpad[prevScratchpadIndex]+(scratchpad[scratchpadIndex]<<2)+5]
		}
	}
}

// TransformBCT runs the Curl permutation on 64 binary coded states at once.
// Lane i of lo[j] and hi[j] holds trit j of state i.
func TransformBCT(lo, hi *[StateSize]uint64, rounds Rounds) {
	var scratchpadLo, scratchpadHi [StateSize]uint64
	scratchpadIndex := 0
	for round := 0; round < int(rounds); round++ {
		scratchpadLo, scratchpadHi = *lo, *hi
		for stateIndex := 0; stateIndex < StateSize; stateIndex++ {
			alpha := scratchpadLo[scratchpadIndex]
			beta := scratchpadHi[scratchpadIndex]
			if scratchpadIndex < 365 {
				scratchpadIndex += 364
			} else {
				scratchpadIndex -= 365
			}
			gamma := scratchpadHi[scratchpadIndex]
			delta := (alpha | ^gamma) & (scratchpadLo[scratchpadIndex] ^ beta)

			lo[stateIndex] = ^delta
			hi[stateIndex] = (alpha ^ gamma) | delta
		}
	}
}
