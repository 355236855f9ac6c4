package rules

// ApplyClassic populates the registry with Conway's original rules: a live
// cell with two or three live neighbors survives, and a dead cell with
// exactly three live neighbors is born, each with certainty.
func ApplyClassic(reg *Registry) {
	reg.Add(Survival, 2, 1)
	reg.Add(Survival, 3, 1)
	reg.Add(Birth, 3, 1)
}

// ApplyProblife populates the registry with the Problife preset: survival at
// two or three neighbors with probability 0.9, birth at three neighbors with
// probability 0.8.
func ApplyProblife(reg *Registry) {
	reg.Add(Survival, 2, 0.9)
	reg.Add(Survival, 3, 0.9)
	reg.Add(Birth, 3, 0.8)
}
