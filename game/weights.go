package game

// cellWeights scores square ownership. Corners dominate; the X-squares
// diagonally inside them and the C-squares beside them are liabilities
// because occupying one tends to hand the corner to the opponent. The exact
// values are load-bearing: the medium tier picks moves by them and the
// positional evaluator term sums them, so changing any entry changes the
// computer's play. Symmetric under every board reflection.
var cellWeights = [Size][Size]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{5, -2, 1, 1, 1, 1, -2, 5},
	{10, -2, 5, 1, 1, 5, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// CellWeight returns the positional weight of one square.
func CellWeight(row, col int) int {
	return cellWeights[row][col]
}
